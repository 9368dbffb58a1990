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

	// ErrInvalidFormat is returned when a field value does not satisfy its
	// format constraint.
	ErrInvalidFormat = fmt.Errorf("%w: invalid format", ErrValidation)

	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = fmt.Errorf("%w: missing field", ErrValidation)

	// ErrDuplicateFlashcard is returned when a flashcard with the same
	// question and answer already exists in the collection.
	ErrDuplicateFlashcard = errors.New("this flashcard already exists in the flashnotes")

	// ErrFlashcardNotFound is returned when an operation targets a flashcard
	// that is not part of the collection.
	ErrFlashcardNotFound = errors.New("flashcard not found")

	// ErrDuplicateDeck is returned when a deck with the same name already exists.
	ErrDuplicateDeck = errors.New("deck already exists")
)

// MissingFieldMessageFormat is the message used for absent required fields.
const MissingFieldMessageFormat = "Flashcard's %s field is missing!"

// ValidationError describes a field that failed validation.
// Err is either ErrMissingField or ErrInvalidFormat.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// NewMissingFieldError reports that the named field is absent.
func NewMissingFieldError(field string) *ValidationError {
	return NewValidationError(field, fmt.Sprintf(MissingFieldMessageFormat, field), ErrMissingField)
}

// NewInvalidFormatError reports that the named field violates its constraint.
func NewInvalidFormatError(field, constraint string) *ValidationError {
	return NewValidationError(field, constraint, ErrInvalidFormat)
}

// IsMissingField reports whether err is a missing field error for field.
// An empty field matches any missing field error.
func IsMissingField(err error, field string) bool {
	return isFieldError(err, field, ErrMissingField)
}

// IsInvalidFormat reports whether err is an invalid format error for field.
// An empty field matches any invalid format error.
func IsInvalidFormat(err error, field string) bool {
	return isFieldError(err, field, ErrInvalidFormat)
}

func isFieldError(err error, field string, kind error) bool {
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	if !errors.Is(vErr.Err, kind) {
		return false
	}
	return field == "" || vErr.Field == field
}
