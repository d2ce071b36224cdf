// Package logging provides structured logging utilities for xmsconan commands.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across all commands. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
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
//	    logging.SetDefaultStructuredLogger("xmsconan", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("generating build files", "config", configPath)
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("xmsconan", "v1.0.0", "debug")
//	logger.Info("build starting", "profile", profilePath)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("xmsconan", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug xmsconan generate xmscore.toml
//	LOG_LEVEL=error xmsconan build --profile linux_gcc.profile
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
//	    "msg": "build files generated",
//	    "module": "xmsconan",
//	    "version": "v1.0.0",
//	    "files": 4
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "generator.Render",
//	        "file": "generator.go",
//	        "line": 45
//	    },
//	    "msg": "rendering template",
//	    "module": "xmsconan",
//	    "version": "v1.0.0"
//	}
//
// # Integration
//
// This package is used by:
//   - pkg/cli - command logging
//   - pkg/generator - file generation logging
//   - pkg/builder - conan/cmake invocation logging
//   - pkg/packager - binary packaging logging
//
// All commands share consistent logging format and configuration.
package logging
