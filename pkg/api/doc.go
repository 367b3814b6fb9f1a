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

// Package api provides the HTTP API layer for the mod inspection service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes
// single-file mod inspection via REST API. Note: the API server does not
// support collection scanning or save game parsing; use the CLI for these
// operations.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/fsgmodding/modcheck/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Setting up route handlers (e.g., /v1/inspect)
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - POST /v1/inspect - Inspect an uploaded mod package
//
// System Endpoints (no rate limiting):
//   - GET /healthz - Health check (liveness probe)
//   - GET /readyz  - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Request Body (POST /v1/inspect)
//
// POST requests accept a multipart/form-data body with the mod package in
// the "mod" file field. The uploaded file name is used for mod naming
// checks, so clients should preserve the original file name. Uploads are
// capped at 512 MiB.
//
// Example curl command:
//
//	curl -X POST http://localhost:8080/v1/inspect \
//	  -F "mod=@FS22_Example_Mod.zip"
//
// The response is always a full inspection record: a damaged or misnamed
// package is reported through the record's issues and canNotUse flag, not
// as an HTTP error.
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fsgmodding/modcheck/pkg/api.version=1.0.0'"
package api
