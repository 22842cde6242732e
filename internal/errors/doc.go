// Package errors holds the error conventions shared by the vmsg CLI.
//
// It re-exports the github.com/cockroachdb/errors helpers used throughout the
// module, defines sentinel errors for common failure conditions and provides
// [ExitError], which carries a process exit code and an optional suggestion.
//
//	if errors.Is(err, vmsgerrors.ErrNotFound) {
//	    // handle missing catalog
//	}
//
// Exit codes follow Unix conventions:
//
//   - ExitSuccess (0): command completed, nothing to report
//   - ExitUser (1): invalid input, invalid catalog, or validation messages were produced
//   - ExitSystem (2): I/O and other environmental failures
package errors
