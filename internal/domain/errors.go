// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = fmt.Errorf("%w: content cannot be empty", ErrValidation)

	// ErrInvalidDifficulty is returned when a difficulty value is not on the ladder.
	ErrInvalidDifficulty = fmt.Errorf("%w: invalid difficulty", ErrValidation)

	// ErrInvalidCardSide is returned when a card side is neither FRONT nor BACK.
	ErrInvalidCardSide = fmt.Errorf("%w: invalid card side", ErrValidation)

	// ErrInvalidSetType is returned when a set type is neither PUBLIC nor PRIVATE.
	ErrInvalidSetType = fmt.Errorf("%w: invalid set type", ErrValidation)

	// ErrQuestionClosed is returned when an answer is recorded on a question
	// that has already been answered.
	ErrQuestionClosed = errors.New("question already closed")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError describes a single invalid field. It wraps a sentinel
// (usually ErrValidation) so callers can test for the category with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
