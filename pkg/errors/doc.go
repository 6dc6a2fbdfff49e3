// Package errors provides structured error types for the CLI boundary.
// Core packages raise their own typed errors; the command layer wraps them
// with a code before logging and turning them into an exit status.
//
// Example usage:
//
//	err := errors.Wrap(
//	    errors.ErrCodeVcs,
//	    "failed to tag repository",
//	    cause,
//	)
package errors
