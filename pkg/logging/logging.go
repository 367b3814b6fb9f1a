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

package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

const logLevelEnvVar = "LOG_LEVEL"

// ParseLevel converts a textual log level into a slog.Level.
// Parsing is case-insensitive and accepts debug, info, warn, warning,
// and error. Unknown values fall back to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// levelFromEnv resolves the log level from the LOG_LEVEL environment
// variable, defaulting to info when unset.
func levelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(logLevelEnvVar))
}

// NewStructuredLogger creates a JSON slog.Logger writing to stderr with
// module and version attributes attached to every record. Source location
// is included when the level is debug.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return newLogger(module, version, ParseLevel(level))
}

func newLogger(module, version string, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})

	return slog.New(h).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs a structured JSON logger as the slog
// default. The level is taken from the LOG_LEVEL environment variable,
// defaulting to info.
func SetDefaultStructuredLogger(module, version string) {
	slog.SetDefault(newLogger(module, version, levelFromEnv()))
}

// SetDefaultStructuredLoggerWithLevel installs a structured JSON logger as
// the slog default with an explicit level, bypassing LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(newLogger(module, version, ParseLevel(level)))
}

// NewLogLogger returns a standard library *log.Logger that forwards to the
// default slog handler at the given level. Useful for libraries that only
// accept the legacy logger type (e.g. http.Server.ErrorLog).
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(h, level)
}
