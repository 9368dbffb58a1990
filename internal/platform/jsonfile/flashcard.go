package jsonfile

import "github.com/flashnotes/flashnotes/internal/domain"

// JSONFlashcard is the JSON record of a flashcard.
// Pointer fields distinguish an absent value from an invalid one.
type JSONFlashcard struct {
	Question *string  `json:"question"`
	Answer   *string  `json:"answer"`
	Tags     []string `json:"tags"`
}

// NewJSONFlashcard converts a flashcard into its JSON record.
func NewJSONFlashcard(f domain.Flashcard) JSONFlashcard {
	question := f.Question().String()
	answer := f.Answer().String()
	return JSONFlashcard{
		Question: &question,
		Answer:   &answer,
		Tags:     f.Tags().Strings(),
	}
}

// ToModel validates the record and converts it into a flashcard.
// Fields are checked in order: question, answer, then each tag.
func (j JSONFlashcard) ToModel() (domain.Flashcard, error) {
	if j.Question == nil {
		return domain.Flashcard{}, domain.NewMissingFieldError(domain.FieldQuestion)
	}
	question, err := domain.NewQuestion(*j.Question)
	if err != nil {
		return domain.Flashcard{}, err
	}

	if j.Answer == nil {
		return domain.Flashcard{}, domain.NewMissingFieldError(domain.FieldAnswer)
	}
	answer, err := domain.NewAnswer(*j.Answer)
	if err != nil {
		return domain.Flashcard{}, err
	}

	tags, err := domain.ParseTagSet(j.Tags...)
	if err != nil {
		return domain.Flashcard{}, err
	}

	return domain.NewFlashcard(question, answer, tags), nil
}
