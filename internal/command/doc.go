// Package command implements the user-facing operations on a FlashNotes
// collection: adding, editing, deleting, listing, finding and clearing
// flashcards, and summarizing decks.
//
// Commands are constructed from already parsed input and executed against a
// Model. Index arguments always refer to the currently displayed view of the
// model, so a command that filters the view changes what later indices mean.
package command
