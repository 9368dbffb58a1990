package ui

import (
	"fmt"
	"strings"

	"github.com/flashnotes/flashnotes/internal/domain"
)

// MessageNoFlashcards is shown when the displayed list is empty.
const MessageNoFlashcards = "No flashcards to show."

// FormatFlashcards renders cards as a numbered list. Numbers are the
// one-based indices that edit and delete accept.
func FormatFlashcards(cards []domain.Flashcard) string {
	if len(cards) == 0 {
		return RenderMuted(MessageNoFlashcards)
	}

	var b strings.Builder
	for i, card := range cards {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s\n", RenderAccent(fmt.Sprintf("%d.", i+1)), card.Question())
		fmt.Fprintf(&b, "   Answer: %s", card.Answer())
		if card.Tags().Len() > 0 {
			fmt.Fprintf(&b, "\n   %s", RenderMuted("Tags: "+card.Tags().String()))
		}
	}
	return b.String()
}
