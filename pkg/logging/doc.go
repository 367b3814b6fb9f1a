// Package logging provides structured logging utilities for modcheck components.
//
// # Overview
//
// This package wraps the standard library slog package with modcheck-specific
// defaults and conventions for consistent logging across all components. It
// supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("modcheck", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("inspecting package", "path", "FS22_Example.zip")
//	    slog.Debug("manifest entry", "name", entry.Name, "size", entry.Size)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("modcheck-api", "v2.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug modcheck inspect FS22_Example.zip
//	LOG_LEVEL=error modcheck serve
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "inspection complete",
//	    "module": "modcheck",
//	    "version": "v1.0.0",
//	    "issues": 2
//	}
//
// All components share consistent logging format and configuration.
package logging
