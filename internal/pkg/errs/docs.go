// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the application's error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: missing entities
//   - NotAuthorizedError: role or ownership violations
//   - ConflictError: duplicate unique fields such as usernames or order codes
//   - InvalidTransitionError: illegal order status changes
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The HTTP adapter relies on the sentinels to translate any error from the
// application core into a stable status code and a safe client-facing message.
package errs
