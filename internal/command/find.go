package command

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/flashnotes/flashnotes/internal/domain"
)

// MessageFlashcardsListed is the feedback format for find.
const MessageFlashcardsListed = "%d flashcards listed!"

// QuestionContainsKeywords returns a predicate that matches flashcards whose
// question contains any of the keywords as a whole word, ignoring case.
// Keywords and questions are split into words the same way, so punctuation
// in a keyword is ignored.
func QuestionContainsKeywords(keywords []string) domain.Predicate {
	var wanted []string
	for _, k := range keywords {
		wanted = append(wanted, words(k)...)
	}
	return func(f domain.Flashcard) bool {
		questionWords := words(f.Question().String())
		for _, w := range wanted {
			if slices.Contains(questionWords, w) {
				return true
			}
		}
		return false
	}
}

// words lowercases s and splits it into runs of letters and digits.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// FindCommand displays the flashcards whose question matches any keyword.
type FindCommand struct {
	keywords []string
}

// NewFindCommand creates a FindCommand.
// Returns ErrInvalidCommandFormat if no keyword is given.
func NewFindCommand(keywords ...string) (*FindCommand, error) {
	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		cleaned = append(cleaned, words(k)...)
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: at least one keyword is required", ErrInvalidCommandFormat)
	}
	return &FindCommand{keywords: cleaned}, nil
}

// Name implements Command.
func (c *FindCommand) Name() string { return "find" }

// Execute filters the displayed view.
func (c *FindCommand) Execute(model Model) (Result, error) {
	model.UpdateFilter(QuestionContainsKeywords(c.keywords))
	return Result{
		Feedback: fmt.Sprintf(MessageFlashcardsListed, len(model.FilteredFlashcards())),
	}, nil
}
