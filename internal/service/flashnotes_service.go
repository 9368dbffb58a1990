package service

import (
	"context"
	"log/slog"

	"github.com/flashnotes/flashnotes/internal/command"
	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/flashnotes/flashnotes/internal/events"
	"github.com/flashnotes/flashnotes/internal/platform/logger"
)

// FlashNotesService runs commands against the FlashNotes collection.
type FlashNotesService interface {
	// Execute runs cmd and returns its result.
	// A change event is emitted when the command modified the collection.
	Execute(ctx context.Context, cmd command.Command) (command.Result, error)

	// FilteredFlashcards returns the flashcards of the current view.
	FilteredFlashcards() []domain.Flashcard

	// Decks returns the decks of the collection.
	Decks() []domain.Deck
}

// flashNotesServiceImpl implements the FlashNotesService interface
type flashNotesServiceImpl struct {
	model   *domain.FlashNotes
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewFlashNotesService creates a new FlashNotesService.
// It returns an error if any of the required dependencies are nil.
func NewFlashNotesService(
	model *domain.FlashNotes,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (FlashNotesService, error) {
	if model == nil {
		return nil, domain.NewValidationError("model", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		return nil, domain.NewValidationError("emitter", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &flashNotesServiceImpl{
		model:   model,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "flashnotes_service")),
	}, nil
}

// Execute implements FlashNotesService.Execute
func (s *flashNotesServiceImpl) Execute(ctx context.Context, cmd command.Command) (command.Result, error) {
	if cmd == nil {
		return command.Result{}, ErrNilCommand
	}

	if logger.TraceID(ctx) == "" {
		ctx = logger.WithTraceID(ctx)
	}
	ctx = logger.WithLogger(ctx, s.logger.With(slog.String("command", cmd.Name())))
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("executing command")

	result, err := cmd.Execute(s.model)
	if err != nil {
		if IsUserError(err) {
			log.Info("command rejected", slog.String("error", err.Error()))
			return command.Result{}, err
		}
		log.Error("command failed", slog.String("error", err.Error()))
		return command.Result{}, NewServiceError("execute", "command "+cmd.Name()+" failed", err)
	}

	if result.Changed {
		event := events.NewChangeEvent(cmd.Name(), s.model)
		if err := s.emitter.EmitEvent(ctx, event); err != nil {
			log.Error("failed to publish change",
				slog.String("error", err.Error()),
				slog.String("event_id", event.ID.String()))
			return result, NewServiceError("execute", "failed to publish change", err)
		}
	}

	log.Debug("command executed", slog.Bool("changed", result.Changed))
	return result, nil
}

// FilteredFlashcards implements FlashNotesService.FilteredFlashcards
func (s *flashNotesServiceImpl) FilteredFlashcards() []domain.Flashcard {
	return s.model.FilteredFlashcards()
}

// Decks implements FlashNotesService.Decks
func (s *flashNotesServiceImpl) Decks() []domain.Deck {
	return s.model.Decks()
}
