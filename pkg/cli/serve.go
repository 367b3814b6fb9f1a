/*
Copyright © 2025 FSG Modding
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/fsgmodding/modcheck/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the mod inspection HTTP API",
		Description: `Run the HTTP API server.

The server exposes mod inspection as POST /v1/inspect (multipart upload
with the package in the "mod" file field) plus /healthz, /readyz, and
Prometheus /metrics endpoints. It rate limits requests, recovers from
handler panics, and shuts down gracefully on SIGINT/SIGTERM.

# Configuration

  PORT                      HTTP server port (default: 8080)
  MODCHECK_RATE_LIMIT       Requests per second per instance
  SHUTDOWN_TIMEOUT_SECONDS  Graceful shutdown budget
  LOG_LEVEL                 Logging level (debug, info, warn, error)

# Examples

Run on the default port:
  modcheck serve

Run on a custom port:
  PORT=9090 modcheck serve`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return api.Serve()
		},
	}
}
