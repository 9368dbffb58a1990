package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/flashnotes/flashnotes/internal/config"
	"github.com/flashnotes/flashnotes/internal/events"
	"github.com/flashnotes/flashnotes/internal/platform/jsonfile"
	"github.com/flashnotes/flashnotes/internal/platform/logger"
	"github.com/flashnotes/flashnotes/internal/service"
	"github.com/flashnotes/flashnotes/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// application holds the dependencies shared by every subcommand and ensures
// proper cleanup on exit.
type application struct {
	config *config.Config
	logger *slog.Logger

	store   store.FlashNotesStore
	service service.FlashNotesService

	closeLog func() error
}

// initializeApp loads configuration, sets up logging and wires the service.
// A .env file in the working directory is applied before the configuration
// is read.
func initializeApp(ctx context.Context, configFile string, fsys afero.Fs) (*application, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, closeLog, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	app, err := newApplication(ctx, cfg, l, fsys)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	app.closeLog = closeLog
	return app, nil
}

// newApplication creates the store, loads the collection, and connects the
// service to the autosave handler.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, fsys afero.Fs) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.store = jsonfile.NewStorage(fsys, cfg.Storage.DataFile, logger)

	fn, err := service.Load(ctx, app.store, logger)
	if err != nil {
		return nil, err
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(service.NewAutosaveHandler(app.store, logger))

	app.service, err = service.NewFlashNotesService(fn, emitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashnotes service: %w", err)
	}

	logger.Debug("application initialized",
		slog.String("data_file", cfg.Storage.DataFile),
		slog.String("log_level", cfg.Log.Level))
	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.closeLog == nil {
		return
	}
	if err := app.closeLog(); err != nil {
		app.logger.Error("error closing log file", "error", err)
	}
}
