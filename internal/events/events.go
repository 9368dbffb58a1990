package events

import (
	"context"
	"time"

	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/google/uuid"
)

// TypeFlashNotesChanged is the type of events emitted after a command changed
// the collection.
const TypeFlashNotesChanged = "flashnotes.changed"

// ChangeEvent reports a change of the FlashNotes collection.
type ChangeEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID

	// Type indicates what kind of change happened
	Type string

	// Command names the command that caused the change
	Command string

	// Snapshot is a copy of the collection after the change
	Snapshot *domain.FlashNotes

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time
}

// NewChangeEvent creates a ChangeEvent for command. The collection is copied,
// so handlers see it as it was when the event was created.
func NewChangeEvent(command string, fn *domain.FlashNotes) *ChangeEvent {
	return &ChangeEvent{
		ID:        uuid.New(),
		Type:      TypeFlashNotesChanged,
		Command:   command,
		Snapshot:  fn.Copy(),
		CreatedAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
// Handlers are responsible for processing events and taking appropriate actions.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ChangeEvent) error
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *ChangeEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *ChangeEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *ChangeEvent) error
}
