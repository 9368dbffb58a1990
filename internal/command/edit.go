package command

import (
	"errors"
	"fmt"

	"github.com/flashnotes/flashnotes/internal/domain"
)

// MessageEditSuccess is the feedback format for a successful edit.
const MessageEditSuccess = "Edited Flashcard: %s"

// EditDescriptor names the fields to overwrite during an edit.
// Unset fields keep the value of the flashcard being edited.
type EditDescriptor struct {
	Question Optional[domain.Question]
	Answer   Optional[domain.Answer]
	Tags     Optional[domain.TagSet]
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Question.IsSet() || d.Answer.IsSet() || d.Tags.IsSet()
}

// CreateEditedFlashcard returns a flashcard with the fields of original
// overwritten by those set in d.
func CreateEditedFlashcard(original domain.Flashcard, d EditDescriptor) domain.Flashcard {
	return domain.NewFlashcard(
		d.Question.OrElse(original.Question()),
		d.Answer.OrElse(original.Answer()),
		d.Tags.OrElse(original.Tags()),
	)
}

// EditCommand edits the flashcard at an index of the displayed list.
type EditCommand struct {
	index      Index
	descriptor EditDescriptor
}

// NewEditCommand creates an EditCommand.
// Returns ErrNothingToEdit if the descriptor sets no field.
func NewEditCommand(index Index, descriptor EditDescriptor) (*EditCommand, error) {
	if !descriptor.IsAnyFieldEdited() {
		return nil, ErrNothingToEdit
	}
	// EditDescriptor only holds immutable values, so the copy is independent.
	return &EditCommand{index: index, descriptor: descriptor}, nil
}

// Name implements Command.
func (c *EditCommand) Name() string { return "edit" }

// Execute replaces the selected flashcard with its edited version and resets
// the displayed view to every flashcard.
func (c *EditCommand) Execute(model Model) (Result, error) {
	toEdit, err := flashcardAt(model, c.index)
	if err != nil {
		return Result{}, err
	}

	edited := CreateEditedFlashcard(toEdit, c.descriptor)
	if !toEdit.IsSameFlashcard(edited) && model.HasFlashcard(edited) {
		return Result{}, domain.ErrDuplicateFlashcard
	}

	if err := model.SetFlashcard(toEdit, edited); err != nil {
		if errors.Is(err, domain.ErrDuplicateFlashcard) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("failed to replace flashcard: %w", err)
	}
	model.UpdateFilter(domain.ShowAllFlashcards)

	return Result{
		Feedback:  fmt.Sprintf(MessageEditSuccess, edited),
		Changed:   true,
		Flashcard: Some(edited),
	}, nil
}

// flashcardAt returns the flashcard at index in the displayed list.
func flashcardAt(model Model, index Index) (domain.Flashcard, error) {
	shown := model.FilteredFlashcards()
	if index.ZeroBased() >= len(shown) {
		return domain.Flashcard{}, ErrInvalidIndex
	}
	return shown[index.ZeroBased()], nil
}
