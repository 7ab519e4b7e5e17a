// Package errs provides the error taxonomy shared by the order desk.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// The families map onto how a failure is handled:
//   - ObjectNotFoundError: table, worksheet or order missing; fatal for the load cycle
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation,
//     the mutation never reaches a store (see IsValidation)
//   - AdapterError: a store call failed; the action is reported as failed and not retried
//   - ConfigurationError: credentials or identifiers missing; fatal at startup
package errs
