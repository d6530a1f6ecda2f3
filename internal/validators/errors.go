package validators

import "errors"

// Validation failure kinds. Match them with errors.Is on the error returned by a validator.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidRange  = errors.New("invalid range")
	ErrInvalidValue  = errors.New("invalid value")
	ErrConflict      = errors.New("conflict")
)

// ValidationError is returned when a record violates one of its invariants.
// Reason is a human-readable message safe to return to clients.
type ValidationError struct {
	Kind   error
	Field  string
	Reason string
}

func newValidationError(kind error, field, reason string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Reason: reason}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap exposes the failure kind to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}
