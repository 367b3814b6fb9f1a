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

	"github.com/fsgmodding/modcheck/pkg/inspect"
	"github.com/fsgmodding/modcheck/pkg/record"
	"github.com/fsgmodding/modcheck/pkg/serializer"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Inspect one or more mod package files",
		ArgsUsage:             "PATH [PATH...]",
		Description: `Inspect mod packages (zip archives or unpacked folders) and report
their metadata and problems as records:
  - File and archive naming checks
  - modDesc.xml metadata (author, version, title, dependencies)
  - Content census (scripts, store items, textures, extra files)
  - Suspect script detection
  - Map configuration and crop growth data

A single PATH serializes as one record; multiple paths serialize as an
array in argument order. A damaged or misnamed package never fails the
command: its problems are reported through the record's issues.

The record can be output in JSON, YAML, or table format.

# Examples

Inspect a single package:
  modcheck inspect FS22_Example_Mod.zip

Inspect a folder of unpacked mods with store item detail:
  modcheck inspect --include-detail ~/mods/FS22_Example_Mod

Inspect several packages into one file:
  modcheck inspect -o records.json FS22_A.zip FS22_B.zip`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "collection",
				Usage:   "Collection name stamped on each record",
				Sources: cli.EnvVars("MODCHECK_COLLECTION"),
			},
			&cli.BoolFlag{
				Name:  "include-detail",
				Usage: "Extract the store item catalog (vehicles, placeables, brands)",
			},
			&cli.BoolFlag{
				Name:  "include-save-game",
				Usage: "Parse detected save games instead of only flagging them",
			},
			&cli.BoolFlag{
				Name:  "skip-icons",
				Usage: "Skip mod icon and map image conversion",
			},
			&cli.BoolFlag{
				Name:  "skip-detail-icons",
				Usage: "Skip store item and brand icon conversion",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return fmt.Errorf("at least one package path is required")
			}

			ins := inspect.New(
				inspect.WithVersion(version),
				inspect.WithCollection(cmd.String("collection")),
				inspect.WithDetail(cmd.Bool("include-detail")),
				inspect.WithSaveGame(cmd.Bool("include-save-game")),
				inspect.WithSkipIcons(cmd.Bool("skip-icons")),
				inspect.WithSkipDetailIcons(cmd.Bool("skip-detail-icons")),
			)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			// One path is one record, several paths are an array.
			if len(paths) == 1 {
				return ser.Serialize(ctx, ins.Inspect(ctx, paths[0]))
			}

			recs := make([]*record.Record, 0, len(paths))
			for _, p := range paths {
				recs = append(recs, ins.Inspect(ctx, p))
			}
			return ser.Serialize(ctx, recs)
		},
	}
}
