package service

import (
	"errors"
	"fmt"

	"github.com/flashnotes/flashnotes/internal/command"
	"github.com/flashnotes/flashnotes/internal/domain"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is().
//
// Error handling principles:
// 1. Expected user errors from commands and the domain are returned as they are
// 2. Unexpected errors are wrapped in ServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The CLI maps errors to user messages and exit codes
var (
	// ErrNilCommand is returned when Execute is called without a command.
	ErrNilCommand = errors.New("command cannot be nil")
)

// ServiceError is a custom error type for service errors.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flashnotes service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("flashnotes service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// IsUserError reports whether err was caused by user input rather than by
// the system: bad indices, empty edits, duplicates or invalid field values.
func IsUserError(err error) bool {
	switch {
	case errors.Is(err, command.ErrInvalidIndex),
		errors.Is(err, command.ErrNothingToEdit),
		errors.Is(err, command.ErrInvalidCommandFormat),
		errors.Is(err, command.ErrUnknownDeck),
		errors.Is(err, domain.ErrDuplicateFlashcard),
		errors.Is(err, domain.ErrValidation):
		return true
	default:
		return false
	}
}
