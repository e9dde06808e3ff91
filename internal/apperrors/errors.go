package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that an attempt was made to create a resource that already exists.
var ErrConflict = errors.New("resource already exists")

// ErrInvalidState indicates that the operation is not valid given the current
// state of the record (e.g. clocking out without a clock-in).
var ErrInvalidState = errors.New("operation not valid in current state")

// ErrForbidden indicates that the acting user is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// AppError carries an HTTP-ish status hint alongside the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a message and an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError builds a not-found AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError builds a conflict AppError that satisfies errors.Is(err, ErrConflict).
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewInvalidStateError builds an invalid-state AppError that satisfies errors.Is(err, ErrInvalidState).
func NewInvalidStateError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrInvalidState}
}

// NewValidationFailedError builds a validation AppError that satisfies errors.Is(err, ErrValidation).
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewForbiddenError builds a forbidden AppError that satisfies errors.Is(err, ErrForbidden).
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}
