package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrInvalidInput indicates the submitted profile failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownField indicates a field name outside the profile record
	ErrUnknownField = errors.New("unknown field")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// UnknownFieldError creates an unknown field error for the given name
func UnknownFieldError(field string) error {
	return fmt.Errorf("%q: %w", field, ErrUnknownField)
}

// InternalError creates an internal error with context
func InternalError(msg string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%s: %w: %w", msg, ErrInternal, cause)
	}
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
