package jsonfile

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/flashnotes/flashnotes/internal/platform/logger"
	"github.com/flashnotes/flashnotes/internal/store"
	"github.com/spf13/afero"
)

// Storage implements store.FlashNotesStore with a JSON file.
type Storage struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger
}

// Compile-time check that Storage implements store.FlashNotesStore.
var _ store.FlashNotesStore = (*Storage)(nil)

// NewStorage creates a Storage for the JSON file at path on fsys.
// A nil logger falls back to slog.Default().
func NewStorage(fsys afero.Fs, path string, logger *slog.Logger) *Storage {
	if logger == nil {
		logger = slog.Default()
	}
	return &Storage{
		fs:     fsys,
		path:   path,
		logger: logger.With(slog.String("component", "jsonfile_storage")),
	}
}

// Location implements store.FlashNotesStore.
func (s *Storage) Location() string {
	return s.path
}

// Read implements store.FlashNotesStore.
func (s *Storage) Read(ctx context.Context) (*domain.FlashNotes, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("data file does not exist", slog.String("path", s.path))
			return nil, store.ErrDataFileNotFound
		}
		log.Error("failed to read data file",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("read", s.path, "cannot read file", errors.Join(store.ErrDataConversion, err))
	}

	fn, err := Decode(data)
	if err != nil {
		log.Warn("data file rejected",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("read", s.path, "invalid data", err)
	}

	log.Debug("loaded flashnotes",
		slog.String("path", s.path),
		slog.Int("flashcard_count", len(fn.Flashcards())),
		slog.Int("deck_count", len(fn.Decks())))
	return fn, nil
}

// Save implements store.FlashNotesStore. The file is written to a temporary
// sibling first and renamed into place.
func (s *Storage) Save(ctx context.Context, fn *domain.FlashNotes) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	data, err := Encode(fn)
	if err != nil {
		return store.NewStoreError("save", s.path, "cannot encode", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return store.NewStoreError("save", s.path, "cannot create directory", errors.Join(store.ErrSaveFailed, err))
	}

	tmpPath := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, data, 0o600); err != nil {
		return store.NewStoreError("save", s.path, "cannot write temp file", errors.Join(store.ErrSaveFailed, err))
	}
	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return store.NewStoreError("save", s.path, "cannot rename temp file", errors.Join(store.ErrSaveFailed, err))
	}

	log.Debug("saved flashnotes",
		slog.String("path", s.path),
		slog.Int("bytes", len(data)))
	return nil
}
