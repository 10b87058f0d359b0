// Package errs provides standardized error types for the shop application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the application's whole error taxonomy:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a domain rule
//   - ObjectNotFoundError: an entity cannot be located by its identifier
//   - ConflictError: an operation clashes with existing state (duplicate email)
//   - InvalidTransitionError: a status change attempted from a forbidden status
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// All domain failures carried by these types leave prior state untouched;
// guards run before any mutation, so callers never need rollback logic.
package errs
