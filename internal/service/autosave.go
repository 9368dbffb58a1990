package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/flashnotes/flashnotes/internal/events"
	"github.com/flashnotes/flashnotes/internal/platform/logger"
	"github.com/flashnotes/flashnotes/internal/store"
)

// AutosaveHandler persists the collection whenever it changes.
type AutosaveHandler struct {
	store  store.FlashNotesStore
	logger *slog.Logger
}

// NewAutosaveHandler creates an AutosaveHandler that saves through st.
func NewAutosaveHandler(st store.FlashNotesStore, logger *slog.Logger) *AutosaveHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AutosaveHandler{
		store:  st,
		logger: logger.With(slog.String("component", "autosave_handler")),
	}
}

// HandleEvent implements events.EventHandler by saving the event's snapshot.
func (h *AutosaveHandler) HandleEvent(ctx context.Context, event *events.ChangeEvent) error {
	if event.Type != events.TypeFlashNotesChanged {
		return nil
	}

	log := logger.FromContextOrDefault(ctx, h.logger)
	if err := h.store.Save(ctx, event.Snapshot); err != nil {
		return NewServiceError("autosave", "failed to save flashnotes", err)
	}
	log.Debug("flashnotes saved",
		slog.String("event_id", event.ID.String()),
		slog.String("location", h.store.Location()))
	return nil
}

// Load reads the collection from st. A missing data file yields an empty
// collection; any other failure aborts the load.
func Load(ctx context.Context, st store.FlashNotesStore, logger *slog.Logger) (*domain.FlashNotes, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fn, err := st.Read(ctx)
	switch {
	case errors.Is(err, store.ErrDataFileNotFound):
		logger.Info("data file not found, starting with empty flashnotes",
			slog.String("location", st.Location()))
		return domain.NewFlashNotes(), nil
	case err != nil:
		return nil, NewServiceError("load", "failed to read flashnotes", err)
	}

	logger.Debug("flashnotes loaded",
		slog.String("location", st.Location()),
		slog.Int("flashcards", len(fn.Flashcards())),
		slog.Int("decks", len(fn.Decks())))
	return fn, nil
}
