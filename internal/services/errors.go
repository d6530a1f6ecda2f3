package services

import "errors"

// Authentication errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInactiveUser       = errors.New("user is inactive")
)

// RetrievalError reports that a query could not be answered.
// Its message is the message of the underlying fault.
type RetrievalError struct {
	Err error
}

// Error implements the error interface.
func (e *RetrievalError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying fault.
func (e *RetrievalError) Unwrap() error {
	return e.Err
}
