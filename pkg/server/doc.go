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

// Package server provides the HTTP serving layer for the modcheck API.
//
// The package is application-agnostic: callers register their handlers and the
// server wraps them with the shared middleware chain, system endpoints, and
// lifecycle management.
//
// # Architecture
//
// The server implements a stateless HTTP API with the following key components:
//
//   - Functional options for configuration (WithName, WithVersion, WithHandler)
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//   - Prometheus metrics exposed on /metrics
//
// # Usage
//
// Basic server startup:
//
//	s := server.New(
//	    server.WithName("modcheck-api"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/inspect": handleInspect,
//	    }),
//	)
//
//	if err := s.Run(context.Background()); err != nil {
//	    slog.Error("server exited", "error", err)
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 200  // 200 requests/sec
//	cfg.RateLimitBurst = 400
//
//	s := server.New(server.WithConfig(cfg))
//
// # Endpoints
//
// Registered handlers are served with the full middleware chain. In addition
// the server always exposes:
//
// GET / - Route listing (unless the caller registered its own root handler)
//
//	Returns server name, version, readiness, and the registered routes.
//	Non-GET requests receive 405.
//
// GET /healthz - Health check (for liveness probe)
//
//	Always returns 200 OK with {"status": "healthy", "timestamp": "..."}
//
// GET /readyz - Readiness check (for readiness probe)
//
//	Returns 200 OK when ready, 503 when not ready
//
// GET /metrics - Prometheus metrics in text exposition format
//
// # Observability
//
// Request ID Tracking:
//
//	All requests accept an optional X-Request-Id header (UUID format).
//	If not provided, the server generates one automatically.
//	The request ID is returned in the X-Request-Id response header
//	and included in all error responses for tracing.
//
// Rate Limiting:
//
//	Response headers indicate rate limit status:
//	  X-RateLimit-Limit: Total requests allowed per window
//	  X-RateLimit-Remaining: Requests remaining in current window
//	  X-RateLimit-Reset: Unix timestamp when window resets
//
//	When rate limited, returns 429 with Retry-After header.
//
// Metrics:
//
//	modcheck_http_requests_total{method,path,status}
//	modcheck_http_request_duration_seconds{method,path}
//	modcheck_http_requests_in_flight
//	modcheck_rate_limit_rejects_total
//	modcheck_panic_recoveries_total
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "request must be multipart/form-data",
//	  "details": {"contentType": "text/plain"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Error codes map to HTTP status via HTTPStatusFromCode:
//   - INVALID_REQUEST, PARSE_ERROR: 400
//   - NOT_FOUND: 404
//   - METHOD_NOT_ALLOWED: 405
//   - UNREADABLE_ARCHIVE: 422
//   - RATE_LIMIT_EXCEEDED: 429
//   - SERVICE_UNAVAILABLE: 503
//   - TIMEOUT: 504
//   - INTERNAL (and anything unknown): 500
//
// # Deployment
//
// Kubernetes deployment example:
//
//	apiVersion: apps/v1
//	kind: Deployment
//	metadata:
//	  name: modcheck-api
//	spec:
//	  replicas: 3
//	  selector:
//	    matchLabels:
//	      app: modcheck-api
//	  template:
//	    metadata:
//	      labels:
//	        app: modcheck-api
//	    spec:
//	      containers:
//	      - name: api
//	        image: modcheck-api:latest
//	        ports:
//	        - containerPort: 8080
//	        env:
//	        - name: PORT
//	          value: "8080"
//	        livenessProbe:
//	          httpGet:
//	            path: /healthz
//	            port: 8080
//	          initialDelaySeconds: 5
//	          periodSeconds: 10
//	        readinessProbe:
//	          httpGet:
//	            path: /readyz
//	            port: 8080
//	          initialDelaySeconds: 5
//	          periodSeconds: 5
//	        resources:
//	          requests:
//	            cpu: 100m
//	            memory: 128Mi
//	          limits:
//	            cpu: 1000m
//	            memory: 512Mi
//
// The shutdown timeout can be aligned with the pod termination grace period
// via SHUTDOWN_TIMEOUT_SECONDS.
//
// # References
//
//   - Rate limiting: https://pkg.go.dev/golang.org/x/time/rate
//   - UUID generation: https://pkg.go.dev/github.com/google/uuid
//   - Error groups: https://pkg.go.dev/golang.org/x/sync/errgroup
//   - Prometheus client: https://pkg.go.dev/github.com/prometheus/client_golang
//   - Kubernetes probes: https://kubernetes.io/docs/tasks/configure-pod-container/configure-liveness-readiness-startup-probes/
package server
