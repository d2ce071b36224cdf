// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeExternalTool,
//	    "conan install failed",
//	    cmdErr,
//	    map[string]interface{}{
//	        "command":   "conan",
//	        "exit_code": 6,
//	    },
//	)
package errors
