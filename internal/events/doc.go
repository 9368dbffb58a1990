// Package events provides types and interfaces for reacting to changes of
// the FlashNotes collection.
//
// Services emit an event after a command changed the collection without
// knowing which handlers process it; persisting the collection is one such
// handler. Dispatch is synchronous and happens on the caller's goroutine.
//
// The primary components are:
// - ChangeEvent: Reports that a command changed the collection
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
