// Package domain contains the core entities of the application: flashcards,
// their questions, answers and tags, the decks that group them, and the
// FlashNotes collection that holds both. It is independent of any storage
// format or delivery mechanism.
package domain
