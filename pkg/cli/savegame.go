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

	"github.com/fsgmodding/modcheck/pkg/savegame"
	"github.com/fsgmodding/modcheck/pkg/serializer"
)

func savegameCmd() *cli.Command {
	return &cli.Command{
		Name:                  "savegame",
		EnableShellCompletion: true,
		Usage:                 "Parse a save game folder or archive",
		ArgsUsage:             "PATH",
		Description: `Parse a save game (folder or zip archive) and report its farms, the
map it runs on, and every mod it depends on with the farms using it.

Each section of the save parses independently; a missing or damaged
file contributes a stable error token to the record instead of failing
the command. An unopenable PATH yields a record carrying only
SAVE_ERROR_UNREADABLE.

The record can be output in JSON, YAML, or table format.

# Examples

Parse an unpacked save game:
  modcheck savegame ~/FarmingSimulator2022/savegame1

Parse a zipped save game backup into a file:
  modcheck savegame -o save.json savegame1_backup.zip`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one save game path is required")
			}
			path := cmd.Args().First()

			rec := savegame.Parse(path)

			slog.Info("save game parsed",
				"path", path,
				"name", rec.Name,
				"valid", rec.IsValid,
				"farms", len(rec.Farms),
				"mods", len(rec.Mods))

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, rec)
		},
	}
}
