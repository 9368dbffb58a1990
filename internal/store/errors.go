package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrDataFileNotFound is returned when no stored collection exists yet.
	ErrDataFileNotFound = errors.New("data file not found")

	// ErrDataConversion is returned when stored data cannot be decoded into
	// or encoded from the collection.
	ErrDataConversion = errors.New("data conversion failed")

	// ErrSaveFailed is returned when the collection cannot be written.
	ErrSaveFailed = errors.New("save failed")
)

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Operation string // The operation that failed (e.g., "read", "save")
	Location  string // Where the data lives, typically a file path
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s of %s failed: %s: %v", e.Operation, e.Location, e.Message, e.Err)
	}
	return fmt.Sprintf("%s of %s failed: %s", e.Operation, e.Location, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(operation, location, message string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Location:  location,
		Message:   message,
		Err:       err,
	}
}

// IsStorageError reports whether err originates from reading or writing the
// stored data rather than from the data's contents.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrDataConversion) || errors.Is(err, ErrSaveFailed)
}
