package command

import "fmt"

// MessageDeleteSuccess is the feedback format for a successful delete.
const MessageDeleteSuccess = "Deleted Flashcard: %s"

// DeleteCommand deletes the flashcard at an index of the displayed list.
type DeleteCommand struct {
	index Index
}

// NewDeleteCommand creates a DeleteCommand.
func NewDeleteCommand(index Index) *DeleteCommand {
	return &DeleteCommand{index: index}
}

// Name implements Command.
func (c *DeleteCommand) Name() string { return "delete" }

// Execute removes the selected flashcard.
func (c *DeleteCommand) Execute(model Model) (Result, error) {
	target, err := flashcardAt(model, c.index)
	if err != nil {
		return Result{}, err
	}
	if err := model.RemoveFlashcard(target); err != nil {
		return Result{}, fmt.Errorf("failed to delete flashcard: %w", err)
	}
	return Result{
		Feedback:  fmt.Sprintf(MessageDeleteSuccess, target),
		Changed:   true,
		Flashcard: Some(target),
	}, nil
}
