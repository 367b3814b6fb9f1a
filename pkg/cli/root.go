/*
Copyright © 2025 FSG Modding
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/fsgmodding/modcheck/pkg/logging"
	"github.com/fsgmodding/modcheck/pkg/serializer"
)

const (
	name           = "modcheck"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	// e.g., -X "github.com/fsgmodding/modcheck/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
		Sources: cli.EnvVars("MODCHECK_OUTPUT"),
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars("MODCHECK_FORMAT"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("MODCHECK_LOG_LEVEL"),
	}
)

// rootCmd assembles the base command with all subcommands attached.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Farming simulator mod package inspector",
		Description: fmt.Sprintf(`modcheck - Farming simulator mod package inspector

Version: %s
Commit:  %s
Built:   %s

Inspects mod packages (zip archives and unpacked folders) for naming,
structure, and content problems, extracts the modDesc metadata, and
reports everything as a stable record that serializes identically
across runs.`, version, commit, date),
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			// Configure slog before any command action runs so overrides
			// like --log-level take effect everywhere.
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			inspectCmd(),
			collectionCmd(),
			diffCmd(),
			savegameCmd(),
			serveCmd(),
		},
		Action: commandLister,
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
