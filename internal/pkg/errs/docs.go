// Package errs defines the error taxonomy of the order store.
//
// Every classified store failure unwraps to exactly one sentinel, so callers
// classify with errors.Is. Connection, begin and commit errors are returned
// wrapped but unclassified.
//
//   - ErrValidation: a required field is missing or malformed
//   - ErrDuplicateIdentifier: a caller-supplied order id already exists
//   - ErrUnknownOrder: a child operation names an order that does not exist
//   - ErrNotFound: read or delete of an order that does not exist
//   - ErrAlreadyAttached: a second delivery or payment for the same order
//   - ErrIntegrityViolation: a child row survived its order; internal bug, not recoverable
package errs
