// Package ui renders FlashNotes output for the terminal: styled status
// markers, flashcard listings, and the user-facing message and exit code for
// every error the application can return.
package ui
