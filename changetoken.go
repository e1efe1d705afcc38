package iokit

import "sync"

// ChangeToken represents a change notification token. Tokens are single-use:
// once HasChanged reports true it stays true.
//
// Consumers can either poll HasChanged or register a callback with
// RegisterChangeCallback.
type ChangeToken interface {
	// HasChanged returns true if a change has occurred.
	HasChanged() bool

	// RegisterChangeCallback registers a callback invoked when the change
	// occurs; it fires immediately if the token is already signalled.
	// Returns a function to unregister the callback.
	RegisterChangeCallback(callback func()) (unregister func())
}

// TriggerToken is a ChangeToken signalled by the producer that created it.
// Drivers hand it out as a ChangeToken and call Trigger when their watch
// mechanism observes a change.
type TriggerToken struct {
	mu        sync.Mutex
	changed   bool
	next      int
	callbacks map[int]func()
}

// NewTriggerToken returns an unsignalled token.
func NewTriggerToken() *TriggerToken {
	return &TriggerToken{callbacks: make(map[int]func())}
}

// HasChanged implements ChangeToken.
func (t *TriggerToken) HasChanged() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.changed
}

// RegisterChangeCallback implements ChangeToken.
func (t *TriggerToken) RegisterChangeCallback(callback func()) (unregister func()) {
	t.mu.Lock()
	if t.changed {
		t.mu.Unlock()
		callback()
		return func() {}
	}
	id := t.next
	t.next++
	t.callbacks[id] = callback
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.callbacks, id)
		t.mu.Unlock()
	}
}

// Trigger marks the token changed and fires registered callbacks. Triggering
// more than once is a no-op.
func (t *TriggerToken) Trigger() {
	t.mu.Lock()
	if t.changed {
		t.mu.Unlock()
		return
	}
	t.changed = true
	cbs := make([]func(), 0, len(t.callbacks))
	for _, cb := range t.callbacks {
		cbs = append(cbs, cb)
	}
	t.callbacks = nil
	t.mu.Unlock()

	for _, cb := range cbs {
		cb()
	}
}
