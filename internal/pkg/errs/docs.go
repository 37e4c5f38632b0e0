// Package errs provides standardized error types for the supply-chain application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups its types into three families that callers branch on:
//   - NotFound: ObjectNotFoundError, for lookups by id that found nothing
//   - InvalidInput: ValueIsRequiredError, ValueIsInvalidError and ValueIsOutOfRangeError,
//     for payloads that failed a precondition
//   - Corruption: RecordIsCorruptedError, for stored bytes that do not match their schema
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works across wrapping
//
// Use errors.As to recover the details:
//
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    log.Printf("%s %v is gone", notFound.Entity, notFound.ID)
//	}
package errs
