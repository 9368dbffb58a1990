// Package store defines the interface for persisting a FlashNotes collection.
// It abstracts the storage format from the application's core logic, so the
// service layer never depends on how or where the collection is written.
package store
