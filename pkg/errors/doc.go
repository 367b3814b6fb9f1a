// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnreadable,
//	    "failed to open mod archive",
//	    zipErr,
//	    map[string]interface{}{
//	        "path": archivePath,
//	    },
//	)
package errors
