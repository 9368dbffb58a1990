package command

import "github.com/flashnotes/flashnotes/internal/domain"

// Model is the part of the collection that commands operate on.
// *domain.FlashNotes satisfies it.
type Model interface {
	Flashcards() []domain.Flashcard
	FilteredFlashcards() []domain.Flashcard
	HasFlashcard(f domain.Flashcard) bool
	AddFlashcard(f domain.Flashcard) error
	SetFlashcard(target, edited domain.Flashcard) error
	RemoveFlashcard(target domain.Flashcard) error
	UpdateFilter(p domain.Predicate)
	Decks() []domain.Deck
	HasDeck(name domain.Tag) bool
	CountInDeck(name domain.Tag) int
	Reset(other *domain.FlashNotes)
}

// Command is a single operation on a Model.
type Command interface {
	// Name identifies the command in logs.
	Name() string

	// Execute runs the command against model.
	Execute(model Model) (Result, error)
}

// Result is the outcome of a successful command.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string

	// Changed is true when the command modified the collection's contents.
	// Changes to the displayed view alone do not count.
	Changed bool

	// Flashcard holds the flashcard the command acted on, if any.
	Flashcard Optional[domain.Flashcard]
}
