package domain

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Field names as they appear in validation errors.
const (
	FieldQuestion = "Question"
	FieldAnswer   = "Answer"
	FieldTag      = "Tag"
	FieldDeck     = "Deck"
	FieldStats    = "Stats"
)

// Constraint messages reported by InvalidFormat errors.
const (
	QuestionConstraints = "Questions should only contain letters, digits, spaces and basic punctuation, " +
		"and it should not be blank"
	AnswerConstraints = "Answers can take any values, should be at least 2 characters long, " +
		"and it should not be blank"
	TagConstraints    = "Tags names should be alphanumeric"
	DeckConstraints   = "Deck names should be alphanumeric"
	StatsConstraints  = "Deck statistics should be non-negative and correct answers cannot exceed reviews"
)

// Validation rules expressed as validator tags.
const (
	questionRules = "required,max=200,question"
	answerRules   = "required,min=2,max=500,answer"
	tagRules      = "required,max=30,alphanum"
)

var questionPattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ?.,'"\-():;!/+=*%&]*$`)

// validate is shared by every constructor in the package.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("question", func(fl validator.FieldLevel) bool {
		return questionPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("answer", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if strings.TrimSpace(s) == "" {
			return false
		}
		return !unicode.IsSpace([]rune(s)[0])
	})

	return v
}

// IsValidQuestion reports whether s satisfies the question constraint.
func IsValidQuestion(s string) bool {
	return validate.Var(s, questionRules) == nil
}

// IsValidAnswer reports whether s satisfies the answer constraint.
func IsValidAnswer(s string) bool {
	return validate.Var(s, answerRules) == nil
}

// IsValidTagName reports whether s satisfies the tag constraint.
func IsValidTagName(s string) bool {
	return validate.Var(s, tagRules) == nil
}
