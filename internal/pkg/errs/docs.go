// Package errs provides the standardized error taxonomy for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Four recoverable error kinds cover every user-facing failure:
//   - ValidationError: malformed or policy-violating input
//   - AuthorizationError: actor lacks the role or ownership for an operation
//   - ConflictError: unique-constraint violations and concurrent state races
//   - NotFoundError: referenced object does not exist (or is outside the
//     caller's scope, which is deliberately indistinguishable)
//
// Each error kind follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValidation)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP adapter maps the sentinels to status codes; anything outside this
// taxonomy is treated as an internal failure and never surfaced verbatim.
package errs
