package domain

import "slices"

// Predicate selects flashcards for the displayed view.
type Predicate func(Flashcard) bool

// ShowAllFlashcards is the predicate that displays every flashcard.
func ShowAllFlashcards(Flashcard) bool { return true }

// InDeck returns a predicate that displays the members of the named deck.
func InDeck(name Tag) Predicate {
	return func(f Flashcard) bool {
		return f.Tags().Contains(name)
	}
}

// FlashNotes is the in-memory flashcard collection. It holds the unique
// flashcard list, the deck list and the predicate of the displayed view.
//
// Flashcards are unique by question and answer; decks are unique by name.
// Every tag of every flashcard names a deck in the list.
type FlashNotes struct {
	flashcards []Flashcard
	decks      []Deck
	filter     Predicate
}

// NewFlashNotes creates an empty collection that displays all flashcards.
func NewFlashNotes() *FlashNotes {
	return &FlashNotes{filter: ShowAllFlashcards}
}

// Copy returns an independent copy of the collection, view included.
func (fn *FlashNotes) Copy() *FlashNotes {
	return &FlashNotes{
		flashcards: slices.Clone(fn.flashcards),
		decks:      slices.Clone(fn.decks),
		filter:     fn.filter,
	}
}

// Flashcards returns every flashcard in insertion order.
func (fn *FlashNotes) Flashcards() []Flashcard {
	return slices.Clone(fn.flashcards)
}

// Decks returns every deck in insertion order.
func (fn *FlashNotes) Decks() []Deck {
	return slices.Clone(fn.decks)
}

// HasFlashcard reports whether a flashcard with the same question and answer
// as f is in the collection.
func (fn *FlashNotes) HasFlashcard(f Flashcard) bool {
	return fn.indexOfSame(f) >= 0
}

// AddFlashcard appends f and creates the decks named by its tags.
// Returns ErrDuplicateFlashcard if an equivalent flashcard exists.
func (fn *FlashNotes) AddFlashcard(f Flashcard) error {
	if fn.HasFlashcard(f) {
		return ErrDuplicateFlashcard
	}
	fn.flashcards = append(fn.flashcards, f)
	fn.ensureDecks(f.Tags())
	return nil
}

// SetFlashcard replaces target with edited.
// Returns ErrFlashcardNotFound if target is not in the collection and
// ErrDuplicateFlashcard if edited collides with a different flashcard.
func (fn *FlashNotes) SetFlashcard(target, edited Flashcard) error {
	i := fn.indexOf(target)
	if i < 0 {
		return ErrFlashcardNotFound
	}
	if !target.IsSameFlashcard(edited) && fn.HasFlashcard(edited) {
		return ErrDuplicateFlashcard
	}
	fn.flashcards[i] = edited
	fn.ensureDecks(edited.Tags())
	return nil
}

// RemoveFlashcard deletes target from the collection. Decks are kept.
// Returns ErrFlashcardNotFound if target is not in the collection.
func (fn *FlashNotes) RemoveFlashcard(target Flashcard) error {
	i := fn.indexOf(target)
	if i < 0 {
		return ErrFlashcardNotFound
	}
	fn.flashcards = slices.Delete(fn.flashcards, i, i+1)
	return nil
}

// HasDeck reports whether a deck with the given name exists.
func (fn *FlashNotes) HasDeck(name Tag) bool {
	return fn.indexOfDeck(name) >= 0
}

// Deck returns the named deck.
func (fn *FlashNotes) Deck(name Tag) (Deck, bool) {
	i := fn.indexOfDeck(name)
	if i < 0 {
		return Deck{}, false
	}
	return fn.decks[i], true
}

// AddDeck appends d. Returns ErrDuplicateDeck if the name is taken.
func (fn *FlashNotes) AddDeck(d Deck) error {
	if fn.HasDeck(d.Name()) {
		return ErrDuplicateDeck
	}
	fn.decks = append(fn.decks, d)
	return nil
}

// RestoreDeck attaches d to the collection: an existing deck with the same
// name takes d's statistics, an unknown deck is appended.
func (fn *FlashNotes) RestoreDeck(d Deck) {
	if i := fn.indexOfDeck(d.Name()); i >= 0 {
		fn.decks[i] = fn.decks[i].WithStats(d.Stats())
		return
	}
	fn.decks = append(fn.decks, d)
}

// CountInDeck returns the number of flashcards that belong to the named deck.
func (fn *FlashNotes) CountInDeck(name Tag) int {
	n := 0
	for _, f := range fn.flashcards {
		if f.Tags().Contains(name) {
			n++
		}
	}
	return n
}

// FilteredFlashcards returns the flashcards of the displayed view.
func (fn *FlashNotes) FilteredFlashcards() []Flashcard {
	filter := fn.filter
	if filter == nil {
		filter = ShowAllFlashcards
	}
	out := make([]Flashcard, 0, len(fn.flashcards))
	for _, f := range fn.flashcards {
		if filter(f) {
			out = append(out, f)
		}
	}
	return out
}

// UpdateFilter changes the predicate of the displayed view.
// A nil predicate displays every flashcard.
func (fn *FlashNotes) UpdateFilter(p Predicate) {
	if p == nil {
		p = ShowAllFlashcards
	}
	fn.filter = p
}

// Reset replaces the contents with a copy of other's flashcards and decks and
// displays every flashcard.
func (fn *FlashNotes) Reset(other *FlashNotes) {
	fn.flashcards = slices.Clone(other.flashcards)
	fn.decks = slices.Clone(other.decks)
	fn.filter = ShowAllFlashcards
}

func (fn *FlashNotes) ensureDecks(tags TagSet) {
	for _, t := range tags.Tags() {
		if !fn.HasDeck(t) {
			fn.decks = append(fn.decks, NewDeck(t))
		}
	}
}

func (fn *FlashNotes) indexOf(f Flashcard) int {
	return slices.IndexFunc(fn.flashcards, f.Equal)
}

func (fn *FlashNotes) indexOfSame(f Flashcard) int {
	return slices.IndexFunc(fn.flashcards, f.IsSameFlashcard)
}

func (fn *FlashNotes) indexOfDeck(name Tag) int {
	return slices.IndexFunc(fn.decks, func(d Deck) bool { return d.Name() == name })
}
