/*
Copyright © 2025 FSG Modding
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/fsgmodding/modcheck/pkg/collection"
	"github.com/fsgmodding/modcheck/pkg/defaults"
	"github.com/fsgmodding/modcheck/pkg/inspect"
	"github.com/fsgmodding/modcheck/pkg/serializer"
)

func collectionCmd() *cli.Command {
	return &cli.Command{
		Name:                  "collection",
		EnableShellCompletion: true,
		Usage:                 "Scan a directory of mod packages",
		ArgsUsage:             "DIR",
		Description: `Scan a mod collection folder and report on every package in it.

Each zip archive and each immediate subfolder under DIR is inspected in
parallel, and the results are assembled into a single collection report
with per-run identity, broken and issue counts, and the records sorted
by short name so two scans of the same folder diff cleanly.

Individual package problems never fail the scan; they surface as issues
on the package's record. The scan fails only when DIR itself is
unreadable.

The report can be output in JSON, YAML, or table format.

# Examples

Scan a mod folder:
  modcheck collection ~/FarmingSimulator2022/mods

Scan with a custom collection name into a file:
  modcheck collection --name winter-mods -o report.json ~/mods

Save a report for later comparison with 'modcheck diff':
  modcheck collection -o before.json ~/mods`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Collection name recorded in the report (default: DIR base name)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: defaults.ScanConcurrency,
				Usage: "Number of packages inspected in parallel",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.ScanTimeout,
				Usage: "Timeout for the full collection scan",
			},
			&cli.BoolFlag{
				Name:  "skip-icons",
				Usage: "Skip mod icon and map image conversion",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one collection directory is required")
			}
			root := cmd.Args().First()

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			ins := inspect.New(
				inspect.WithVersion(version),
				inspect.WithSkipIcons(cmd.Bool("skip-icons")),
			)

			s := collection.NewScanner(
				collection.WithInspector(ins),
				collection.WithName(cmd.String("name")),
				collection.WithConcurrency(int(cmd.Int("concurrency"))),
			)

			rep, err := s.Scan(ctx, root)
			if err != nil {
				return fmt.Errorf("failed to scan collection %q: %w", root, err)
			}

			slog.Info("collection scanned",
				"name", rep.Name,
				"mods", len(rep.Mods),
				"broken", rep.BrokenCount,
				"issues", rep.IssueCount,
				"duration", rep.Duration)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, rep)
		},
	}
}
