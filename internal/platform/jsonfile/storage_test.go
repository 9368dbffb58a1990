package jsonfile

import (
	"context"
	"errors"
	"testing"

	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/flashnotes/flashnotes/internal/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "data/flashnotes.json"

func TestStorage_SaveAndRead(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	s := NewStorage(fsys, testPath, nil)
	ctx := context.Background()

	original := typicalFlashNotes(t)
	require.NoError(t, s.Save(ctx, original))

	exists, err := afero.Exists(fsys, testPath+".tmp")
	require.NoError(t, err)
	assert.False(t, exists, "temp file must be renamed away")

	loaded, err := s.Read(ctx)
	require.NoError(t, err)
	assertSameCollection(t, original, loaded)
	assert.Equal(t, testPath, s.Location())
}

func TestStorage_ReadMissingFile(t *testing.T) {
	t.Parallel()

	s := NewStorage(afero.NewMemMapFs(), testPath, nil)
	fn, err := s.Read(context.Background())
	assert.Nil(t, fn)
	assert.ErrorIs(t, err, store.ErrDataFileNotFound)
}

func TestStorage_ReadInvalidData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		data  string
		check func(t *testing.T, err error)
	}{
		{
			name: "malformed JSON",
			data: `not json`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, store.ErrDataConversion)
			},
		},
		{
			name: "duplicate flashcards",
			data: `{"flashcards": [
				{"question": "Who?", "answer": "Me", "tags": []},
				{"question": "Who?", "answer": "Me", "tags": ["x"]}
			]}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrDuplicateFlashcard)
			},
		},
		{
			name: "missing question",
			data: `{"flashcards": [{"answer": "Me"}]}`,
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsMissingField(err, domain.FieldQuestion))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, testPath, []byte(tc.data), 0o600))

			fn, err := NewStorage(fsys, testPath, nil).Read(context.Background())
			assert.Nil(t, fn)
			require.Error(t, err)

			var storeErr *store.StoreError
			require.True(t, errors.As(err, &storeErr))
			assert.Equal(t, "read", storeErr.Operation)
			tc.check(t, err)
		})
	}
}

func TestStorage_SaveReadOnlyFilesystem(t *testing.T) {
	t.Parallel()

	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := NewStorage(fsys, testPath, nil).Save(context.Background(), domain.NewFlashNotes())
	assert.ErrorIs(t, err, store.ErrSaveFailed)
	assert.True(t, store.IsStorageError(err))
}

func TestStorage_SaveOverwrites(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	s := NewStorage(fsys, testPath, nil)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, typicalFlashNotes(t)))
	require.NoError(t, s.Save(ctx, domain.NewFlashNotes()))

	data, err := afero.ReadFile(fsys, testPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"flashcards": [], "decks": []}`, string(data))
}
