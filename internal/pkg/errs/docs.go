// Package errs provides standardized error types for the freight service.
// Domain, application and adapter layers all report failures through these
// types so the HTTP layer can map them to status codes in one place.
//
// The package includes:
//   - ObjectNotFoundError: a lookup by identifier returned nothing
//   - ObjectAlreadyExistsError: a uniqueness rule (e.g. registry code) would be broken
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value has the wrong format or character set
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - BusinessRuleViolationError: a well-formed write that the workflow forbids
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on joined errors
package errs
