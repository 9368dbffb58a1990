// Package jsonfile stores a FlashNotes collection as a single JSON document.
//
// The document has two top-level arrays:
//
//	{
//	  "flashcards": [{"question": "...", "answer": "...", "tags": ["..."]}],
//	  "decks":      [{"name": "...", "stats": {"reviewed": 0, "correct": 0}}]
//	}
//
// Encoding maps the collection to raw records without validation. Decoding
// runs in two passes: every flashcard record is validated and added to a
// fresh collection first, then every deck record is applied to restore deck
// statistics. The first failure aborts the whole decode.
package jsonfile
