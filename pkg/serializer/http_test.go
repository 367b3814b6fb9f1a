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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsgmodding/modcheck/pkg/defaults"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusCreated, modRow{ShortName: "FS22_Test", Version: "1.0.0.0"})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	var got modRow
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if got.ShortName != "FS22_Test" {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestRespondJSONEncodingFailure(t *testing.T) {
	w := httptest.NewRecorder()

	// Channels cannot be JSON encoded, forcing the error path.
	RespondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestNewFetcherDefaults(t *testing.T) {
	f := NewFetcher()

	if f.userAgent != fetcherUserAgent {
		t.Errorf("expected default user agent, got %q", f.userAgent)
	}
	if f.client == nil {
		t.Fatal("expected a default client")
	}
	if f.client.Timeout != defaults.HTTPClientTimeout {
		t.Errorf("expected default timeout %s, got %s", defaults.HTTPClientTimeout, f.client.Timeout)
	}
}

func TestFetcherOptions(t *testing.T) {
	f := NewFetcher(
		WithFetcherTimeout(5*time.Second),
		WithFetcherUserAgent("modbot/2.0"),
	)
	if f.client.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", f.client.Timeout)
	}
	if f.userAgent != "modbot/2.0" {
		t.Errorf("expected custom user agent, got %q", f.userAgent)
	}

	// Non-positive timeouts and empty agents keep the defaults.
	f = NewFetcher(WithFetcherTimeout(-1), WithFetcherUserAgent(""))
	if f.client.Timeout != defaults.HTTPClientTimeout {
		t.Errorf("expected default timeout, got %s", f.client.Timeout)
	}
	if f.userAgent != fetcherUserAgent {
		t.Errorf("expected default user agent, got %q", f.userAgent)
	}
}

func TestFetcherCustomClient(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	f := NewFetcher(WithFetcherClient(custom))
	if f.client != custom {
		t.Error("expected the supplied client to be used")
	}
}

func TestFetch(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"name":"my-mods"}`))
	}))
	defer srv.Close()

	data, err := NewFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !strings.Contains(string(data), "my-mods") {
		t.Errorf("unexpected body: %s", data)
	}
	if gotAgent != fetcherUserAgent {
		t.Errorf("expected user agent %q, got %q", fetcherUserAgent, gotAgent)
	}
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := NewFetcher().Fetch(context.Background(), srv.URL+"/absent.json"); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestFetchEmptyURL(t *testing.T) {
	if _, err := NewFetcher().Fetch(context.Background(), ""); err == nil {
		t.Error("expected error for empty url")
	}
}

func TestFetchCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("slow"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFetcher().Fetch(ctx, srv.URL); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"my-mods"}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "report.json")
	if err := NewFetcher().Download(context.Background(), srv.URL, path); err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("downloaded file unreadable: %v", err)
	}
	if !strings.Contains(string(data), "my-mods") {
		t.Errorf("unexpected file content: %s", data)
	}
}

func TestDownloadBadPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer srv.Close()

	err := NewFetcher().Download(context.Background(), srv.URL, filepath.Join(t.TempDir(), "missing", "report.json"))
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}
