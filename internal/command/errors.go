package command

import "errors"

// Command errors. Callers check them with errors.Is.
var (
	// ErrInvalidIndex is returned when an index is outside the displayed list.
	ErrInvalidIndex = errors.New("the flashcard index provided is invalid")

	// ErrNothingToEdit is returned when an edit names no field to change.
	ErrNothingToEdit = errors.New("at least one field to edit must be provided")

	// ErrInvalidCommandFormat is returned when command input cannot be parsed.
	ErrInvalidCommandFormat = errors.New("invalid command format")

	// ErrUnknownDeck is returned when a command names a deck that does not exist.
	ErrUnknownDeck = errors.New("deck does not exist")
)
