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

package defaults

import "time"

// Inspection timeouts and limits for package processing.
const (
	// InspectTimeout is the default per-package time budget. Inspections
	// should respect parent context deadlines when shorter.
	InspectTimeout = 30 * time.Second

	// ScanTimeout is the default timeout for a full collection scan.
	ScanTimeout = 10 * time.Minute

	// ScanConcurrency is the default number of packages inspected in parallel
	// during a collection scan.
	ScanConcurrency = 4
)

// Handler timeouts for HTTP request processing.
const (
	// InspectHandlerTimeout is the timeout for upload inspection requests.
	// Longer than InspectTimeout to cover the upload spool.
	InspectHandlerTimeout = 60 * time.Second

	// InspectUploadLimit caps the accepted upload size for the inspect
	// endpoint. Matches the game's own practical mod size ceiling.
	InspectUploadLimit = 512 << 20 // 512 MiB
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Sized for inspect responses on large uploads.
	ServerWriteTimeout = 90 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)
