package command

import (
	"fmt"

	"github.com/flashnotes/flashnotes/internal/domain"
)

// MessageAddSuccess is the feedback format for a successful add.
const MessageAddSuccess = "New flashcard added: %s"

// AddCommand adds a flashcard to the collection.
type AddCommand struct {
	flashcard domain.Flashcard
}

// NewAddCommand creates an AddCommand for f.
func NewAddCommand(f domain.Flashcard) *AddCommand {
	return &AddCommand{flashcard: f}
}

// Name implements Command.
func (c *AddCommand) Name() string { return "add" }

// Execute adds the flashcard. Returns domain.ErrDuplicateFlashcard if an
// equivalent flashcard exists.
func (c *AddCommand) Execute(model Model) (Result, error) {
	if model.HasFlashcard(c.flashcard) {
		return Result{}, domain.ErrDuplicateFlashcard
	}
	if err := model.AddFlashcard(c.flashcard); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback:  fmt.Sprintf(MessageAddSuccess, c.flashcard),
		Changed:   true,
		Flashcard: Some(c.flashcard),
	}, nil
}
