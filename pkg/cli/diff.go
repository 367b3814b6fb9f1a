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
	"github.com/fsgmodding/modcheck/pkg/serializer"
)

func diffCmd() *cli.Command {
	return &cli.Command{
		Name:                  "diff",
		EnableShellCompletion: true,
		Usage:                 "Compare two saved collection reports",
		ArgsUsage:             "OLD NEW",
		Description: `Compare two collection reports previously saved with 'modcheck
collection' and report what changed.

Mods are matched by short name. The diff lists:
  - added:   mods present only in NEW
  - removed: mods present only in OLD
  - updated: mods in both with a different version or issue set

Reports load from local files or HTTP/HTTPS URLs, with the format
detected from the file extension (.json, .yaml).

The diff can be output in JSON, YAML, or table format.

# Examples

Compare two saved reports:
  modcheck diff before.json after.json

Compare a local report against a published one:
  modcheck diff https://mods.example.com/report.json after.json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 2 {
				return fmt.Errorf("exactly two report paths are required (old and new)")
			}
			oldPath := cmd.Args().Get(0)
			newPath := cmd.Args().Get(1)

			oldRep, err := collection.LoadReport(oldPath)
			if err != nil {
				return err
			}

			newRep, err := collection.LoadReport(newPath)
			if err != nil {
				return err
			}

			dr := collection.Diff(oldRep, newRep)

			slog.Info("reports compared",
				"old", oldPath,
				"new", newPath,
				"added", len(dr.Added),
				"removed", len(dr.Removed),
				"updated", len(dr.Updated),
				"unchanged", dr.Unchanged)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, dr)
		},
	}
}
