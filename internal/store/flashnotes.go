package store

import (
	"context"

	"github.com/flashnotes/flashnotes/internal/domain"
)

// FlashNotesStore defines the interface for FlashNotes persistence.
// Reads and writes always cover the whole collection.
type FlashNotesStore interface {
	// Read loads the collection.
	// Returns ErrDataFileNotFound if nothing has been saved yet.
	// Returns ErrDataConversion if the stored data cannot be decoded, and a
	// domain validation error (or domain.ErrDuplicateFlashcard) if the decoded
	// data violates a constraint. No partial collection is returned.
	Read(ctx context.Context) (*domain.FlashNotes, error)

	// Save writes the full collection, replacing what was stored before.
	Save(ctx context.Context, fn *domain.FlashNotes) error

	// Location describes where the collection is stored, for messages.
	Location() string
}
