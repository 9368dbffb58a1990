package domain

import (
	"slices"
	"strings"
)

// Question is the prompt side of a flashcard.
type Question string

// NewQuestion validates s and returns it as a Question.
func NewQuestion(s string) (Question, error) {
	if !IsValidQuestion(s) {
		return "", NewInvalidFormatError(FieldQuestion, QuestionConstraints)
	}
	return Question(s), nil
}

func (q Question) String() string { return string(q) }

// Answer is the response side of a flashcard.
type Answer string

// NewAnswer validates s and returns it as an Answer.
func NewAnswer(s string) (Answer, error) {
	if !IsValidAnswer(s) {
		return "", NewInvalidFormatError(FieldAnswer, AnswerConstraints)
	}
	return Answer(s), nil
}

func (a Answer) String() string { return string(a) }

// Tag labels a flashcard. Every tag also names the deck the card belongs to.
type Tag string

// NewTag validates s and returns it as a Tag.
func NewTag(s string) (Tag, error) {
	if !IsValidTagName(s) {
		return "", NewInvalidFormatError(FieldTag, TagConstraints)
	}
	return Tag(s), nil
}

func (t Tag) String() string { return string(t) }

// TagSet is an immutable set of tags kept in sorted order.
// The zero value is an empty set.
type TagSet struct {
	tags []Tag
}

// NewTagSet builds a set from tags, dropping duplicates.
func NewTagSet(tags ...Tag) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}
	sorted := slices.Clone(tags)
	slices.Sort(sorted)
	return TagSet{tags: slices.Compact(sorted)}
}

// ParseTagSet validates every name and builds a set from them.
func ParseTagSet(names ...string) (TagSet, error) {
	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		tag, err := NewTag(name)
		if err != nil {
			return TagSet{}, err
		}
		tags = append(tags, tag)
	}
	return NewTagSet(tags...), nil
}

// Tags returns a copy of the tags in sorted order.
func (s TagSet) Tags() []Tag {
	return slices.Clone(s.tags)
}

// Strings returns the tag names in sorted order.
func (s TagSet) Strings() []string {
	out := make([]string, len(s.tags))
	for i, t := range s.tags {
		out[i] = string(t)
	}
	return out
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int { return len(s.tags) }

// Contains reports whether t is in the set.
func (s TagSet) Contains(t Tag) bool {
	_, found := slices.BinarySearch(s.tags, t)
	return found
}

// Equal reports whether both sets hold the same tags.
func (s TagSet) Equal(other TagSet) bool {
	return slices.Equal(s.tags, other.tags)
}

func (s TagSet) String() string {
	return "[" + strings.Join(s.Strings(), ", ") + "]"
}

// Flashcard is an immutable question/answer pair with tags.
type Flashcard struct {
	question Question
	answer   Answer
	tags     TagSet
}

// NewFlashcard creates a Flashcard from already validated parts.
func NewFlashcard(question Question, answer Answer, tags TagSet) Flashcard {
	return Flashcard{
		question: question,
		answer:   answer,
		tags:     tags,
	}
}

// ParseFlashcard validates the raw values and creates a Flashcard.
// The question is checked first, then the answer, then each tag.
func ParseFlashcard(question, answer string, tags ...string) (Flashcard, error) {
	q, err := NewQuestion(question)
	if err != nil {
		return Flashcard{}, err
	}
	a, err := NewAnswer(answer)
	if err != nil {
		return Flashcard{}, err
	}
	ts, err := ParseTagSet(tags...)
	if err != nil {
		return Flashcard{}, err
	}
	return NewFlashcard(q, a, ts), nil
}

// Question returns the flashcard's question.
func (f Flashcard) Question() Question { return f.question }

// Answer returns the flashcard's answer.
func (f Flashcard) Answer() Answer { return f.answer }

// Tags returns the flashcard's tags.
func (f Flashcard) Tags() TagSet { return f.tags }

// IsSameFlashcard reports whether both flashcards have the same question and
// answer. Tags are ignored. This is the identity used for duplicate detection.
func (f Flashcard) IsSameFlashcard(other Flashcard) bool {
	return f.question == other.question && f.answer == other.answer
}

// Equal reports whether both flashcards have identical fields, tags included.
func (f Flashcard) Equal(other Flashcard) bool {
	return f.IsSameFlashcard(other) && f.tags.Equal(other.tags)
}

func (f Flashcard) String() string {
	var b strings.Builder
	b.WriteString("Question: ")
	b.WriteString(string(f.question))
	b.WriteString("; Answer: ")
	b.WriteString(string(f.answer))
	if f.tags.Len() > 0 {
		b.WriteString("; Tags: ")
		b.WriteString(f.tags.String())
	}
	return b.String()
}
