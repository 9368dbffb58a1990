package service

import (
	"context"

	"github.com/flashnotes/flashnotes/internal/command"
	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/flashnotes/flashnotes/internal/events"
)

// MockStore implements store.FlashNotesStore for testing
type MockStore struct {
	ReadResult *domain.FlashNotes
	ReadErr    error
	SaveErr    error
	Saved      []*domain.FlashNotes
}

func (m *MockStore) Read(ctx context.Context) (*domain.FlashNotes, error) {
	return m.ReadResult, m.ReadErr
}

func (m *MockStore) Save(ctx context.Context, fn *domain.FlashNotes) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = append(m.Saved, fn)
	return nil
}

func (m *MockStore) Location() string { return "mock" }

// recordingEmitter collects emitted events
type recordingEmitter struct {
	events []*events.ChangeEvent
	err    error
}

func (e *recordingEmitter) EmitEvent(ctx context.Context, event *events.ChangeEvent) error {
	e.events = append(e.events, event)
	return e.err
}

// stubCommand returns a fixed result
type stubCommand struct {
	result command.Result
	err    error
}

func (c stubCommand) Name() string { return "stub" }

func (c stubCommand) Execute(model command.Model) (command.Result, error) {
	return c.result, c.err
}
