/*
Copyright © 2025 FSG Modding
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/fsgmodding/modcheck/pkg/serializer"
)

// parseOutputFormat reads the format flag from the command and validates
// it against the supported serialization formats.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// commandLister prints the visible commands when the root command is
// invoked without a subcommand. Safe to call with a nil command.
func commandLister(_ context.Context, cmd *cli.Command) error {
	if cmd == nil {
		return nil
	}

	fmt.Printf("%s - %s\n", cmd.Name, cmd.Usage)

	if len(cmd.Commands) > 0 {
		fmt.Println("\nCommands:")
		for _, sub := range cmd.Commands {
			if sub.Hidden {
				continue
			}
			fmt.Printf("  %-12s %s\n", sub.Name, sub.Usage)
		}
		fmt.Printf("\nRun '%s COMMAND --help' for more information on a command.\n", cmd.Name)
	}

	return nil
}
