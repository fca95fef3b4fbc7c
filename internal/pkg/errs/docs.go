// Package errs provides the typed errors shared by the marketplace core.
//
// Every error type pairs a sentinel (ErrValueIsInvalid, ErrObjectNotFound, ...) with a
// struct carrying details. Constructors come in plain and WithCause variants, and
// Unwrap returns the sentinel so callers classify with errors.Is:
//
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange, ErrInvalidTransition:
//     malformed input or a business rule violation (HTTP 400)
//   - ErrForbidden: the actor may see the entity but not change it (HTTP 403)
//   - ErrObjectNotFound: missing, or invisible to the actor (HTTP 404)
//   - ErrDatabase: wrapped persistence failure (HTTP 500)
package errs
