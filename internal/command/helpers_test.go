package command

import (
	"testing"

	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/stretchr/testify/require"
)

func mustFlashcard(t *testing.T, question, answer string, tags ...string) domain.Flashcard {
	t.Helper()
	f, err := domain.ParseFlashcard(question, answer, tags...)
	require.NoError(t, err)
	return f
}

func mustIndex(t *testing.T, oneBased int) Index {
	t.Helper()
	i, err := FromOneBased(oneBased)
	require.NoError(t, err)
	return i
}

// typicalFlashNotes returns a collection with three flashcards in two decks.
func typicalFlashNotes(t *testing.T) *domain.FlashNotes {
	t.Helper()
	fn := domain.NewFlashNotes()
	for _, f := range []domain.Flashcard{
		mustFlashcard(t, "Capital of France?", "Paris", "geo"),
		mustFlashcard(t, "Capital of Spain?", "Madrid", "geo"),
		mustFlashcard(t, "Who painted the Mona Lisa?", "Leonardo da Vinci", "art"),
	} {
		require.NoError(t, fn.AddFlashcard(f))
	}
	return fn
}
