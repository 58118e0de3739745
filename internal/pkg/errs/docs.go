// Package errs provides standardized error types shared across the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() so errors.Is works against the
//     sentinel
//
// Domain-specific sentinels (invalid status transition, order already
// assigned, and so on) live next to the aggregates that raise them; this
// package only holds the cross-cutting categories: missing objects, invalid
// or missing values, out-of-range values, and uniqueness violations.
package errs
