// Package errs provides the standardized error types used across the delivery
// tracking application.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for error-chain support
//
// Handlers and adapters classify failures with errors.Is/errors.As against the
// sentinels, so callers never need to match on message text.
package errs
