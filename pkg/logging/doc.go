// Package logging provides structured logging utilities for pepbump.
//
// # Overview
//
// This package wraps the standard library slog package with tool-wide
// defaults and conventions. It supports environment-based log level
// configuration, module/version context injection, and automatic source
// location tracking for debug logs.
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
//	    logging.SetDefaultStructuredLogger("pepbump", version)
//
//	    // Use slog as normal
//	    slog.Info("bumping version", "from", "1.2.3", "to", "1.3.0")
//	    slog.Debug("detected version source", "file", path)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("pepbump", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug pepbump suggest
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format so command output on
// stdout stays machine-readable:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "bumping version",
//	    "module": "pepbump",
//	    "version": "v1.0.0",
//	    "from": "1.2.3",
//	    "to": "1.3.0"
//	}
//
// Debug logs additionally include the source location of the call.
package logging
