package command

import (
	"fmt"

	"github.com/flashnotes/flashnotes/internal/domain"
)

// Feedback for the list command.
const (
	MessageListAll  = "Listed all flashcards"
	MessageListDeck = "Listed flashcards in deck %s"
)

// ListCommand displays every flashcard, or the members of one deck.
type ListCommand struct {
	deck Optional[domain.Tag]
}

// NewListCommand creates a ListCommand that displays every flashcard.
func NewListCommand() *ListCommand {
	return &ListCommand{}
}

// NewListDeckCommand creates a ListCommand that displays the members of deck.
func NewListDeckCommand(deck domain.Tag) *ListCommand {
	return &ListCommand{deck: Some(deck)}
}

// Name implements Command.
func (c *ListCommand) Name() string { return "list" }

// Execute updates the displayed view.
// Returns ErrUnknownDeck if the named deck does not exist.
func (c *ListCommand) Execute(model Model) (Result, error) {
	deck, ok := c.deck.Get()
	if !ok {
		model.UpdateFilter(domain.ShowAllFlashcards)
		return Result{Feedback: MessageListAll}, nil
	}
	if !model.HasDeck(deck) {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownDeck, deck)
	}
	model.UpdateFilter(domain.InDeck(deck))
	return Result{Feedback: fmt.Sprintf(MessageListDeck, deck)}, nil
}
