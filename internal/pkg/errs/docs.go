// Package errs provides the typed errors shared by the domain, the use cases and
// the adapters of the logistics service.
//
// Every error type follows the same pattern:
//   - a sentinel variable (e.g. ErrValueIsRequired) that errors.Is can match
//   - a struct carrying the details (parameter name, id, cause)
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter classifies failures by sentinel only: unauthenticated,
// forbidden, validation (required, invalid, out of range), not found and
// conflict. Anything else is treated as an internal failure, including
// PartialFailureError, which hides the kind of its cause.
package errs
