package domain

import "fmt"

// DeckStats holds the review results recorded for a deck.
type DeckStats struct {
	Reviewed int `validate:"gte=0"`
	Correct  int `validate:"gte=0,ltefield=Reviewed"`
}

// Validate checks that the counts are consistent.
func (s DeckStats) Validate() error {
	if err := validate.Struct(s); err != nil {
		return NewInvalidFormatError(FieldStats, StatsConstraints)
	}
	return nil
}

// ResultPercentage returns the share of correct answers as a percentage.
// ok is false when nothing has been reviewed yet.
func (s DeckStats) ResultPercentage() (pct float64, ok bool) {
	if s.Reviewed == 0 {
		return 0, false
	}
	return float64(s.Correct) * 100 / float64(s.Reviewed), true
}

func (s DeckStats) String() string {
	pct, ok := s.ResultPercentage()
	if !ok {
		return "not reviewed"
	}
	return fmt.Sprintf("%d/%d correct (%.1f%%)", s.Correct, s.Reviewed, pct)
}

// Deck is a named grouping of flashcards. A flashcard belongs to a deck when
// one of its tags equals the deck name; the deck does not own its cards.
type Deck struct {
	name  Tag
	stats DeckStats
}

// NewDeck creates an empty deck with zero statistics.
func NewDeck(name Tag) Deck {
	return Deck{name: name}
}

// ParseDeck validates the raw name and statistics and creates a Deck.
func ParseDeck(name string, stats DeckStats) (Deck, error) {
	if !IsValidTagName(name) {
		return Deck{}, NewInvalidFormatError(FieldDeck, DeckConstraints)
	}
	if err := stats.Validate(); err != nil {
		return Deck{}, err
	}
	return Deck{name: Tag(name), stats: stats}, nil
}

// Name returns the deck name.
func (d Deck) Name() Tag { return d.name }

// Stats returns the deck's statistics.
func (d Deck) Stats() DeckStats { return d.stats }

// WithStats returns a copy of the deck carrying stats.
func (d Deck) WithStats(stats DeckStats) Deck {
	d.stats = stats
	return d
}

// Contains reports whether f is a member of the deck.
func (d Deck) Contains(f Flashcard) bool {
	return f.Tags().Contains(d.name)
}

func (d Deck) String() string {
	return fmt.Sprintf("%s (%s)", d.name, d.stats)
}
