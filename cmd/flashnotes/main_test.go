package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/flashnotes/flashnotes/internal/ui"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataFile = "/flashnotes/data.json"

// testCLI runs commands against one in-memory filesystem, like consecutive
// invocations of the binary.
type testCLI struct {
	t  *testing.T
	fs afero.Fs
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	t.Setenv("FLASHNOTES_STORAGE_DATA_FILE", testDataFile)
	t.Setenv("FLASHNOTES_LOG_LEVEL", "error")
	t.Setenv("FLASHNOTES_LOG_FILE", "")
	return &testCLI{t: t, fs: afero.NewMemMapFs()}
}

func (c *testCLI) run(args ...string) (code int, stdout, stderr string) {
	c.t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, c.fs, &out, &errOut)
	return code, out.String(), errOut.String()
}

func (c *testCLI) mustRun(args ...string) string {
	c.t.Helper()
	code, stdout, stderr := c.run(args...)
	require.Equal(c.t, ui.ExitOK, code, "stderr: %s", stderr)
	return stdout
}

func (c *testCLI) writeData(data string) {
	c.t.Helper()
	require.NoError(c.t, c.fs.MkdirAll(filepath.Dir(testDataFile), 0o755))
	require.NoError(c.t, afero.WriteFile(c.fs, testDataFile, []byte(data), 0o600))
}

func (c *testCLI) seed() {
	c.t.Helper()
	c.mustRun("add", "-q", "Capital of France?", "-a", "Paris", "-t", "geo")
	c.mustRun("add", "-q", "Capital of Spain?", "-a", "Madrid", "-t", "geo")
	c.mustRun("add", "-q", "Who painted the Mona Lisa?", "-a", "Leonardo da Vinci", "-t", "art")
}

func TestAddAndList(t *testing.T) {
	c := newTestCLI(t)

	out := c.mustRun("add", "-q", "Capital of France?", "-a", "Paris", "-t", "geo")
	assert.Contains(t, out, "New flashcard added: Question: Capital of France?; Answer: Paris; Tags: [geo]")

	out = c.mustRun("list")
	assert.Contains(t, out, "Listed all flashcards")
	assert.Contains(t, out, "Capital of France?")

	data, err := afero.ReadFile(c.fs, testDataFile)
	require.NoError(t, err)
	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc["flashcards"], 1)
	assert.Equal(t, "Paris", doc["flashcards"][0]["answer"])
	require.Len(t, doc["decks"], 1)
	assert.Equal(t, "geo", doc["decks"][0]["name"])
}

func TestEdit(t *testing.T) {
	c := newTestCLI(t)
	c.seed()

	out := c.mustRun("edit", "1", "-a", "91234567")
	assert.Contains(t, out, "Edited Flashcard: Question: Capital of France?; Answer: 91234567; Tags: [geo]")

	out = c.mustRun("list")
	assert.Contains(t, out, "Answer: 91234567")
	assert.NotContains(t, out, "Answer: Paris")

	out = c.mustRun("edit", "1", "--clear-tags")
	assert.Contains(t, out, "Edited Flashcard: Question: Capital of France?; Answer: 91234567")
	assert.NotContains(t, out, "Tags:")
}

func TestEdit_WithFilteredView(t *testing.T) {
	c := newTestCLI(t)
	c.seed()

	out := c.mustRun("edit", "1", "--deck", "art", "-t", "renaissance")
	assert.Contains(t, out, "Edited Flashcard: Question: Who painted the Mona Lisa?; Answer: Leonardo da Vinci; Tags: [renaissance]")

	out = c.mustRun("edit", "1", "--find", "spain", "-q", "Capital city of Spain?")
	assert.Contains(t, out, "Question: Capital city of Spain?")
}

func TestEdit_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "nothing to edit",
			args:       []string{"edit", "1"},
			wantCode:   ui.ExitUserError,
			wantStderr: "At least one field to edit must be provided.",
		},
		{
			name:       "index out of range",
			args:       []string{"edit", "9", "-a", "Rome"},
			wantCode:   ui.ExitUserError,
			wantStderr: "The flashcard index provided is invalid",
		},
		{
			name:       "index out of filtered range",
			args:       []string{"edit", "2", "--deck", "art", "-a", "Rome"},
			wantCode:   ui.ExitUserError,
			wantStderr: "The flashcard index provided is invalid",
		},
		{
			name:       "non-positive index",
			args:       []string{"edit", "0", "-a", "Rome"},
			wantCode:   ui.ExitUserError,
			wantStderr: "Invalid command format!",
		},
		{
			name:       "duplicate",
			args:       []string{"edit", "2", "-q", "Capital of France?", "-a", "Paris"},
			wantCode:   ui.ExitUserError,
			wantStderr: "This flashcard already exists in the flashnotes",
		},
		{
			name:       "invalid tag",
			args:       []string{"edit", "1", "-t", "not a tag"},
			wantCode:   ui.ExitUserError,
			wantStderr: "Tags names should be alphanumeric",
		},
		{
			name:       "unknown deck",
			args:       []string{"edit", "1", "--deck", "history", "-a", "Rome"},
			wantCode:   ui.ExitUserError,
			wantStderr: "The deck provided does not exist",
		},
		{
			name:       "unknown flag",
			args:       []string{"edit", "1", "--colour", "red"},
			wantCode:   ui.ExitUserError,
			wantStderr: "Invalid command format!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t)
			c.seed()

			code, _, stderr := c.run(tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr, tt.wantStderr)

			// Rejected commands leave the stored flashcards untouched.
			out := c.mustRun("list")
			assert.Contains(t, out, "Answer: Paris")
			assert.Contains(t, out, "Tags: [art]")
		})
	}
}

func TestDeleteFindAndClear(t *testing.T) {
	c := newTestCLI(t)
	c.seed()

	out := c.mustRun("find", "mona")
	assert.Contains(t, out, "1 flashcards listed!")
	assert.Contains(t, out, "Who painted the Mona Lisa?")
	assert.NotContains(t, out, "Capital of France?")

	out = c.mustRun("find", "France?")
	assert.Contains(t, out, "1 flashcards listed!")
	assert.Contains(t, out, "Capital of France?")

	out = c.mustRun("delete", "2", "--deck", "geo")
	assert.Contains(t, out, "Deleted Flashcard: Question: Capital of Spain?")

	out = c.mustRun("list", "--deck", "geo")
	assert.Contains(t, out, "Listed flashcards in deck geo")
	assert.Contains(t, out, "Capital of France?")
	assert.NotContains(t, out, "Capital of Spain?")

	out = c.mustRun("clear")
	assert.Contains(t, out, "FlashNotes has been cleared!")
	out = c.mustRun("list")
	assert.Contains(t, out, ui.MessageNoFlashcards)
}

func TestDecks(t *testing.T) {
	c := newTestCLI(t)

	out := c.mustRun("decks")
	assert.Contains(t, out, "There are no decks yet")

	c.writeData(`{
  "flashcards": [
    {"question": "Capital of France?", "answer": "Paris", "tags": ["geo"]}
  ],
  "decks": [
    {"name": "geo", "stats": {"reviewed": 4, "correct": 3}},
    {"name": "history", "stats": {"reviewed": 0, "correct": 0}}
  ]
}`)

	out = c.mustRun("decks")
	assert.Contains(t, out, "geo: 1 flashcard, 3/4 correct (75.0%)")
	assert.Contains(t, out, "history: 0 flashcards, not reviewed")
}

func TestInvalidDataFile(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantStderr string
	}{
		{
			name:       "missing question",
			data:       `{"flashcards": [{"question": null, "answer": "x", "tags": []}]}`,
			wantStderr: "Flashcard's Question field is missing!",
		},
		{
			name:       "duplicate flashcards",
			data:       `{"flashcards": [{"question": "Q?", "answer": "Ans"}, {"question": "Q?", "answer": "Ans", "tags": ["x"]}]}`,
			wantStderr: "duplicate flashcard(s)",
		},
		{
			name:       "malformed JSON",
			data:       `{"flashcards": [`,
			wantStderr: "could not be read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI(t)
			c.writeData(tt.data)

			code, stdout, stderr := c.run("list")
			assert.Equal(t, ui.ExitDataError, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.wantStderr)
		})
	}
}

func TestAdd_Errors(t *testing.T) {
	c := newTestCLI(t)

	code, _, stderr := c.run("add", "-q", "Who?")
	assert.Equal(t, ui.ExitUserError, code)
	assert.Contains(t, stderr, "Invalid command format!")

	code, _, stderr = c.run("add", "-q", "wh@", "-a", "x")
	assert.Equal(t, ui.ExitUserError, code)
	assert.Contains(t, stderr, "Questions should only contain")

	code, _, stderr = c.run("add", "-q", "Who?", "-a", "a")
	assert.Equal(t, ui.ExitUserError, code)
	assert.Contains(t, stderr, "at least 2 characters long")

	c.mustRun("add", "-q", "Who?", "-a", "Me")
	code, _, stderr = c.run("add", "-q", "Who?", "-a", "Me", "-t", "people")
	assert.Equal(t, ui.ExitUserError, code)
	assert.Contains(t, stderr, "This flashcard already exists in the flashnotes")
}
