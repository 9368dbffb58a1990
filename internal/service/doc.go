// Package service contains the application use cases of FlashNotes. It
// orchestrates interactions between commands, the in-memory collection and
// the store (defined in internal/store).
//
// Key components:
//
// 1. FlashNotesService:
//   - Runs one command at a time against the collection
//   - Attaches a trace ID and a component logger to the context
//   - Emits a change event when a command modified the collection
//
// 2. AutosaveHandler:
//   - Handles change events by saving the event's snapshot through the store
//
// 3. Load:
//   - Reads the collection at start-up, treating a missing data file as empty
//
// 4. Error Handling:
//   - Expected command and validation errors are returned unchanged
//   - Unexpected errors are wrapped in ServiceError, which preserves errors.Is
//
// The service layer depends on domain types, the command package and the
// store interface, never on a specific storage implementation.
package service
