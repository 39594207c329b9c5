// Package provider decouples what a collection runs next from how it runs it.
//
// Key constructs:
// - Provider: Next/Count/OnFinished contract consumed by collection.Collection
// - List: fixed ordered list served once, in registration order
// - Generator: tasks produced on demand by a function, with a finish hook
// - Chan: tasks received from a channel until it is closed
//
// Every provider latches exhaustion: once Next returned nil it keeps doing so.
package provider
