package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrSelfFollow      = errors.New("self follow rejected")
	ErrValidation      = errors.New("validation failed")
	ErrStore           = errors.New("store failure")
)

// AppError wraps one of the sentinel errors with a human-readable message.
// Handlers unwrap the sentinel to pick a status code and surface Message
// to the client.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Unauthenticated(action string) *AppError {
	return &AppError{
		Err:     ErrUnauthenticated,
		Message: fmt.Sprintf("you must be logged in to %s", action),
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: message,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func SelfFollow() *AppError {
	return &AppError{
		Err:     ErrSelfFollow,
		Message: "you cannot follow yourself",
	}
}

func Validation(message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
	}
}

// Store wraps an underlying store error. The cause stays in the chain for
// logging; Message is what the client sees.
func Store(op string, cause error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %s: %v", ErrStore, op, cause),
		Message: fmt.Sprintf("failed to %s", op),
	}
}
