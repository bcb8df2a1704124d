// Package logging provides structured logging utilities for pyver
// components.
//
// # Overview
//
// This package wraps the standard library slog package with pyver-specific
// defaults and conventions for consistent logging across the CLI and the
// API server. It supports environment-based log level configuration,
// module/version context injection, and automatic source location tracking
// for debug logs.
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
//	    logging.SetDefaultStructuredLogger("pyver", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("checking version", "version", "1.19a1")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("pyver-api-server", "v1.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug pyver check --require ">=1.0" 1.19
//	LOG_LEVEL=error pyverd
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
//	    "msg": "server started",
//	    "module": "pyver-api-server",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
//
// Logs never go to stdout: the CLI reserves stdout for serialized command
// output.
package logging
