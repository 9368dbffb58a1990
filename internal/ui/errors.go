package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flashnotes/flashnotes/internal/command"
	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/flashnotes/flashnotes/internal/service"
	"github.com/flashnotes/flashnotes/internal/store"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitUserError = 1
	ExitDataError = 2
)

// ExitCode maps err to the process exit code. Errors caused by user input
// exit with ExitUserError; problems with the stored data or the filesystem
// exit with ExitDataError.
func ExitCode(err error) int {
	var storeErr *store.StoreError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &storeErr), store.IsStorageError(err):
		return ExitDataError
	case service.IsUserError(err):
		return ExitUserError
	default:
		return ExitDataError
	}
}

// UserMessage returns the message shown to the user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return storeMessage(storeErr)
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, command.ErrInvalidIndex):
		return "The flashcard index provided is invalid"

	case errors.Is(err, command.ErrNothingToEdit):
		return "At least one field to edit must be provided."

	case errors.Is(err, command.ErrInvalidCommandFormat):
		prefix := command.ErrInvalidCommandFormat.Error() + ": "
		if detail, ok := strings.CutPrefix(err.Error(), prefix); ok {
			return "Invalid command format! " + detail
		}
		return "Invalid command format!"

	case errors.Is(err, command.ErrUnknownDeck):
		return "The deck provided does not exist"

	case errors.Is(err, domain.ErrDuplicateFlashcard):
		return "This flashcard already exists in the flashnotes"

	case errors.As(err, &validationErr):
		return validationErr.Message

	case errors.Is(err, store.ErrSaveFailed):
		return "Could not save flashnotes: " + err.Error()

	default:
		return "Unexpected error: " + err.Error()
	}
}

func storeMessage(err *store.StoreError) string {
	var validationErr *domain.ValidationError
	switch {
	case err.Operation == "save":
		return fmt.Sprintf("Could not save flashnotes to %s: %s", err.Location, err.Message)
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Data file %s is invalid: %s", err.Location, validationErr.Message)
	case errors.Is(err, domain.ErrDuplicateFlashcard):
		return fmt.Sprintf("Data file %s is invalid: flashcards list contains duplicate flashcard(s)", err.Location)
	case errors.Is(err, store.ErrDataConversion):
		return fmt.Sprintf("Data file %s could not be read", err.Location)
	default:
		return fmt.Sprintf("Data file %s is invalid: %s", err.Location, err.Message)
	}
}
