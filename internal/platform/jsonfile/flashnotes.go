package jsonfile

import (
	"encoding/json"
	"fmt"

	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/flashnotes/flashnotes/internal/store"
)

// ErrDuplicateFlashcard is returned when a document lists the same flashcard twice.
var ErrDuplicateFlashcard = fmt.Errorf("flashcards list contains duplicate flashcard(s): %w", domain.ErrDuplicateFlashcard)

// JSONFlashNotes is the JSON document of a FlashNotes collection.
type JSONFlashNotes struct {
	Flashcards []JSONFlashcard `json:"flashcards"`
	Decks      []JSONDeck      `json:"decks"`
}

// NewJSONFlashNotes converts the collection into its JSON document.
// Later changes to fn do not affect the document.
func NewJSONFlashNotes(fn *domain.FlashNotes) JSONFlashNotes {
	flashcards := fn.Flashcards()
	decks := fn.Decks()

	doc := JSONFlashNotes{
		Flashcards: make([]JSONFlashcard, 0, len(flashcards)),
		Decks:      make([]JSONDeck, 0, len(decks)),
	}
	for _, f := range flashcards {
		doc.Flashcards = append(doc.Flashcards, NewJSONFlashcard(f))
	}
	for _, d := range decks {
		doc.Decks = append(doc.Decks, NewJSONDeck(d))
	}
	return doc
}

// ToModel converts the document into a collection. Flashcards are loaded
// first; deck records are applied afterwards because deck statistics attach
// to decks created by the flashcards' tags.
func (doc JSONFlashNotes) ToModel() (*domain.FlashNotes, error) {
	fn := domain.NewFlashNotes()
	for i, record := range doc.Flashcards {
		f, err := record.ToModel()
		if err != nil {
			return nil, fmt.Errorf("flashcard %d: %w", i+1, err)
		}
		if fn.HasFlashcard(f) {
			return nil, ErrDuplicateFlashcard
		}
		if err := fn.AddFlashcard(f); err != nil {
			return nil, fmt.Errorf("flashcard %d: %w", i+1, err)
		}
	}

	for i, record := range doc.Decks {
		if err := record.RestoreInto(fn); err != nil {
			return nil, fmt.Errorf("deck %d: %w", i+1, err)
		}
	}

	return fn, nil
}

// Encode serializes the collection as indented JSON.
func Encode(fn *domain.FlashNotes) ([]byte, error) {
	data, err := json.MarshalIndent(NewJSONFlashNotes(fn), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrDataConversion, err)
	}
	return data, nil
}

// Decode parses and validates a JSON document.
func Decode(data []byte) (*domain.FlashNotes, error) {
	var doc JSONFlashNotes
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrDataConversion, err)
	}
	return doc.ToModel()
}
