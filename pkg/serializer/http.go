// Copyright (c) 2025, FSG Modding.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/fsgmodding/modcheck/pkg/defaults"
)

// RespondJSON writes data as a JSON response with the given status
// code. The body is encoded into a buffer before any header is
// written, so an encoding failure still becomes a clean 500 instead
// of a truncated 200.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is gone; nothing left to salvage.
		slog.Warn("response write failed", "error", err)
	}
}

// fetcherUserAgent identifies report downloads to remote servers.
const fetcherUserAgent = "modcheck-fetch/1.0"

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// Fetcher downloads remote collection reports for the file reader
// helpers. It is tuned for occasional single file pulls from mod
// sites, not sustained crawling, so the pool is small and every
// timeout is bounded.
type Fetcher struct {
	userAgent string
	timeout   time.Duration
	client    *http.Client
}

// WithFetcherTimeout bounds the whole request, connect through body
// read. Non-positive values keep the default.
func WithFetcherTimeout(timeout time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// WithFetcherUserAgent overrides the User-Agent presented to the
// remote server.
func WithFetcherUserAgent(agent string) FetcherOption {
	return func(f *Fetcher) {
		if agent != "" {
			f.userAgent = agent
		}
	}
}

// WithFetcherClient substitutes the underlying HTTP client. Transport
// and timeout tuning is the caller's responsibility for a supplied
// client.
func WithFetcherClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// NewFetcher creates a Fetcher. Without options it uses a TLS 1.2+
// transport with conservative connect, handshake, and header
// deadlines from the defaults package.
func NewFetcher(options ...FetcherOption) *Fetcher {
	f := &Fetcher{
		userAgent: fetcherUserAgent,
		timeout:   defaults.HTTPClientTimeout,
	}
	for _, opt := range options {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
				MaxIdleConns:          10,
				ForceAttemptHTTP2:     true,
				TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			},
		}
	}
	return f
}

// Fetch retrieves the body behind url. Anything other than a 200 is
// an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// Download fetches url and writes the body to filePath, readable only
// by the current user.
func (f *Fetcher) Download(ctx context.Context, url, filePath string) error {
	data, err := f.Fetch(ctx, url)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	return nil
}
