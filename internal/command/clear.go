package command

import "github.com/flashnotes/flashnotes/internal/domain"

// MessageClearSuccess is the feedback for clear.
const MessageClearSuccess = "FlashNotes has been cleared!"

// ClearCommand removes every flashcard and deck.
type ClearCommand struct{}

// NewClearCommand creates a ClearCommand.
func NewClearCommand() *ClearCommand { return &ClearCommand{} }

// Name implements Command.
func (c *ClearCommand) Name() string { return "clear" }

// Execute empties the collection.
func (c *ClearCommand) Execute(model Model) (Result, error) {
	model.Reset(domain.NewFlashNotes())
	return Result{Feedback: MessageClearSuccess, Changed: true}, nil
}
