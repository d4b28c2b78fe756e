package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the operation conflicts with existing state,
// e.g. a duplicate budget for the same user, category and month.
var ErrConflict = errors.New("resource conflict")

// ErrInternal indicates a failure inside the application or its record store.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-like status code alongside the wrapped cause.
// Repositories use it to surface store failures as a distinct kind without
// losing the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	// A store failure without a cause is still an internal error kind.
	return ErrInternal
}
