// Package cli implements the command-line interface for the modcheck tool.
//
// # Overview
//
// The modcheck CLI inspects farming simulator mod packages for naming,
// structure, and content problems. It works on single packages, whole mod
// collection folders, and save games, and can serve the same inspection
// over HTTP. It is designed for mod authors validating their packages and
// for collection managers keeping large mod folders healthy.
//
// # Commands
//
// inspect - Inspect mod package files:
//
//	modcheck inspect [--include-detail] [--include-save-game] PATH [PATH...]
//
// Inspects each package (zip archive or unpacked folder) and reports a
// record with the modDesc metadata, content census, and every problem
// found. One path yields one record, several paths an array.
//
// collection - Scan a directory of mod packages:
//
//	modcheck collection [--name NAME] [--concurrency N] DIR
//
// Scans every package directly under DIR in parallel and assembles a
// collection report with broken and issue counts.
//
// diff - Compare two saved collection reports:
//
//	modcheck diff OLD NEW
//
// Reports the mods added, removed, and updated between two saved
// collection reports.
//
// savegame - Parse a save game folder or archive:
//
//	modcheck savegame PATH
//
// Reports the save's farms, map, and mod usage.
//
// serve - Run the mod inspection HTTP API:
//
//	modcheck serve
//
// Exposes inspection as POST /v1/inspect with health, readiness, and
// Prometheus metrics endpoints.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// JSON (default):
//   - Machine-parseable, stable field order
//   - Suitable for programmatic consumption and diffing
//
// YAML:
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// Table:
//   - Flattened key/value text representation
//   - Suitable for terminal viewing
//
// # Usage Examples
//
// Inspect a package:
//
//	modcheck inspect FS22_Example_Mod.zip
//
// Scan a mod folder and save the report:
//
//	modcheck collection --output report.json ~/FarmingSimulator2022/mods
//
// Compare two scans:
//
//	modcheck diff before.json after.json --format table
//
// # Environment Variables
//
//	MODCHECK_OUTPUT      Default output file path
//	MODCHECK_FORMAT      Default output format
//	MODCHECK_LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//	MODCHECK_COLLECTION  Default collection name for inspect records
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/inspect - Package inspection pipeline
//   - pkg/collection - Parallel collection scanning and report diffing
//   - pkg/savegame - Save game parsing
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fsgmodding/modcheck/pkg/cli.version=1.0.0'"
package cli
