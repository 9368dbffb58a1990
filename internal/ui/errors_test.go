package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/flashnotes/flashnotes/internal/command"
	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/flashnotes/flashnotes/internal/service"
	"github.com/flashnotes/flashnotes/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeAndUserMessage(t *testing.T) {
	t.Parallel()

	const path = "data/flashnotes.json"

	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:     "nil",
			err:      nil,
			wantCode: ExitOK,
		},
		{
			name:        "invalid index",
			err:         command.ErrInvalidIndex,
			wantCode:    ExitUserError,
			wantMessage: "The flashcard index provided is invalid",
		},
		{
			name:        "nothing to edit",
			err:         command.ErrNothingToEdit,
			wantCode:    ExitUserError,
			wantMessage: "At least one field to edit must be provided.",
		},
		{
			name:        "invalid command format with detail",
			err:         fmt.Errorf("%w: index must be a positive integer", command.ErrInvalidCommandFormat),
			wantCode:    ExitUserError,
			wantMessage: "Invalid command format! index must be a positive integer",
		},
		{
			name:        "invalid command format",
			err:         command.ErrInvalidCommandFormat,
			wantCode:    ExitUserError,
			wantMessage: "Invalid command format!",
		},
		{
			name:        "unknown deck",
			err:         fmt.Errorf("%w: geo", command.ErrUnknownDeck),
			wantCode:    ExitUserError,
			wantMessage: "The deck provided does not exist",
		},
		{
			name:        "duplicate flashcard",
			err:         domain.ErrDuplicateFlashcard,
			wantCode:    ExitUserError,
			wantMessage: "This flashcard already exists in the flashnotes",
		},
		{
			name:        "invalid question",
			err:         domain.NewInvalidFormatError(domain.FieldQuestion, domain.QuestionConstraints),
			wantCode:    ExitUserError,
			wantMessage: domain.QuestionConstraints,
		},
		{
			name: "missing field in data file",
			err: service.NewServiceError("load", "failed to read flashnotes",
				store.NewStoreError("read", path, "invalid data",
					fmt.Errorf("flashcard 1: %w", domain.NewMissingFieldError(domain.FieldQuestion)))),
			wantCode:    ExitDataError,
			wantMessage: "Data file data/flashnotes.json is invalid: Flashcard's Question field is missing!",
		},
		{
			name: "duplicate in data file",
			err: store.NewStoreError("read", path, "invalid data",
				fmt.Errorf("flashcards list contains duplicate flashcard(s): %w", domain.ErrDuplicateFlashcard)),
			wantCode:    ExitDataError,
			wantMessage: "Data file data/flashnotes.json is invalid: flashcards list contains duplicate flashcard(s)",
		},
		{
			name:        "malformed data file",
			err:         store.NewStoreError("read", path, "invalid data", fmt.Errorf("%w: unexpected end of JSON input", store.ErrDataConversion)),
			wantCode:    ExitDataError,
			wantMessage: "Data file data/flashnotes.json could not be read",
		},
		{
			name: "save failure",
			err: service.NewServiceError("autosave", "failed to save flashnotes",
				store.NewStoreError("save", path, "cannot write temp file", errors.Join(store.ErrSaveFailed, errors.New("read-only")))),
			wantCode:    ExitDataError,
			wantMessage: "Could not save flashnotes to data/flashnotes.json: cannot write temp file",
		},
		{
			name:        "unexpected",
			err:         errors.New("boom"),
			wantCode:    ExitDataError,
			wantMessage: "Unexpected error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCode(tt.err))
			assert.Equal(t, tt.wantMessage, UserMessage(tt.err))
		})
	}
}
