// Package override provides a value that can be forced to a fixed answer,
// typically from tests or an operator flag, and later released back to
// whatever the caller computes by default.
package override

import "sync"

// Value holds a default value that can be overridden.
//
// Reading Value returns the stored value whether or not it was forced;
// callers check IsOverridden (or use Get) to know which it is. Reset only
// clears the flag, it does not restore the value given to New.
type Value[T any] struct {
	mu         sync.RWMutex
	value      T
	overridden bool
}

// New returns a cell holding def that is not overridden.
func New[T any](def T) *Value[T] {
	return &Value[T]{value: def}
}

// Unset returns a cell with no meaningful default. Its value must not be
// used unless IsOverridden reports true.
func Unset[T any]() *Value[T] {
	return &Value[T]{}
}

// Override forces the cell to v.
func (o *Value[T]) Override(v T) {
	o.mu.Lock()
	o.value = v
	o.overridden = true
	o.mu.Unlock()
}

// Reset releases the override.
func (o *Value[T]) Reset() {
	o.mu.Lock()
	o.overridden = false
	o.mu.Unlock()
}

// Value returns the stored value.
func (o *Value[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// IsOverridden reports whether Override was called since the last Reset.
func (o *Value[T]) IsOverridden() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.overridden
}

// Get returns the stored value and whether it is overridden, read atomically.
func (o *Value[T]) Get() (T, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value, o.overridden
}
