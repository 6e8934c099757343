// Package errs holds the typed errors shared by the domain, the use cases and the
// adapters.
//
// Every kind has a sentinel for errors.Is and a struct carrying the details:
//   - ErrValueIsRequired / ValueIsRequiredError: a mandatory argument is missing
//   - ErrValueIsInvalid / ValueIsInvalidError: an argument is malformed
//   - ErrValueIsOutOfRange / ValueIsOutOfRangeError: a number is outside its bounds
//   - ErrObjectNotFound / ObjectNotFoundError: a lookup found nothing
//   - ErrStoreUnavailable / StoreUnavailableError: the store could not be reached and the
//     call may be retried
//
// The HTTP adapter maps them to 400, 404 and 503. Rule violations of order operations
// are not errors of this package; they are values of the domain services package.
package errs
