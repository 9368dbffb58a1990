package command

import (
	"fmt"
	"strings"
)

// MessageNoDecks is the feedback for decks when none exist.
const MessageNoDecks = "There are no decks yet"

// DecksCommand summarizes every deck with its size and statistics.
type DecksCommand struct{}

// NewDecksCommand creates a DecksCommand.
func NewDecksCommand() *DecksCommand { return &DecksCommand{} }

// Name implements Command.
func (c *DecksCommand) Name() string { return "decks" }

// Execute lists the decks. It does not change the model.
func (c *DecksCommand) Execute(model Model) (Result, error) {
	decks := model.Decks()
	if len(decks) == 0 {
		return Result{Feedback: MessageNoDecks}, nil
	}

	lines := make([]string, 0, len(decks))
	for _, d := range decks {
		n := model.CountInDeck(d.Name())
		noun := "flashcards"
		if n == 1 {
			noun = "flashcard"
		}
		lines = append(lines, fmt.Sprintf("%s: %d %s, %s", d.Name(), n, noun, d.Stats()))
	}
	return Result{Feedback: strings.Join(lines, "\n")}, nil
}
