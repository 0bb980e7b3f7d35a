// Package errs provides standardized error types for the florist simulation.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the domain and application layers.
//
// The package includes two error types:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is present but unusable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
