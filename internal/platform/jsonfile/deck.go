package jsonfile

import "github.com/flashnotes/flashnotes/internal/domain"

// MessageMissingDeckName is reported for deck records without a name.
const MessageMissingDeckName = "Deck's name field is missing!"

// JSONDeckStats is the JSON record of a deck's statistics.
type JSONDeckStats struct {
	Reviewed int `json:"reviewed"`
	Correct  int `json:"correct"`
}

// JSONDeck is the JSON record of a deck.
type JSONDeck struct {
	Name  *string       `json:"name"`
	Stats JSONDeckStats `json:"stats"`
}

// NewJSONDeck converts a deck into its JSON record.
func NewJSONDeck(d domain.Deck) JSONDeck {
	name := d.Name().String()
	return JSONDeck{
		Name: &name,
		Stats: JSONDeckStats{
			Reviewed: d.Stats().Reviewed,
			Correct:  d.Stats().Correct,
		},
	}
}

// ToModel validates the record and converts it into a deck.
func (j JSONDeck) ToModel() (domain.Deck, error) {
	if j.Name == nil {
		return domain.Deck{}, domain.NewValidationError(domain.FieldDeck, MessageMissingDeckName, domain.ErrMissingField)
	}
	return domain.ParseDeck(*j.Name, domain.DeckStats{
		Reviewed: j.Stats.Reviewed,
		Correct:  j.Stats.Correct,
	})
}

// RestoreInto attaches the deck and its statistics to fn, which must already
// hold every flashcard.
func (j JSONDeck) RestoreInto(fn *domain.FlashNotes) error {
	deck, err := j.ToModel()
	if err != nil {
		return err
	}
	fn.RestoreDeck(deck)
	return nil
}
