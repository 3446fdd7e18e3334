// Package lazy holds values that are computed at most once, on first use.
package lazy

import (
	"sync"

	"go.uber.org/atomic"
)

// Of is a lazy value that is initialized at most once. A panicking
// initializer leaves the value uninitialized so the next Get retries.
type Of[T any] struct {
	create func() T
	value  T
	done   atomic.Bool
	mu     sync.Mutex
}

// New creates a lazy value. f runs on the first Get.
func New[T any](f func() T) *Of[T] {
	return &Of[T]{create: f}
}

// Get returns the value, initializing it if necessary.
func (t *Of[T]) Get() T { //nolint:ireturn
	if t.done.Load() {
		return t.value
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.done.Load() && t.create != nil {
		t.value = t.create()
		t.create = nil
		t.done.Store(true)
	}

	return t.value
}

// Initialized reports whether Get has produced a value.
func (t *Of[T]) Initialized() bool {
	return t.done.Load()
}

// OfErr is a lazy value whose initializer can fail. Errors are not
// memoized: a failed Get runs the initializer again on the next call.
type OfErr[T any] struct {
	create func() (T, error)
	value  T
	done   atomic.Bool
	mu     sync.Mutex
}

// NewErr creates a lazy value with a fallible initializer.
func NewErr[T any](f func() (T, error)) *OfErr[T] {
	return &OfErr[T]{create: f}
}

// Get returns the value, initializing it if necessary.
func (t *OfErr[T]) Get() (T, error) { //nolint:ireturn
	if t.done.Load() {
		return t.value, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done.Load() {
		return t.value, nil
	}

	var zero T

	if t.create == nil {
		return zero, nil
	}

	value, err := t.create()
	if err != nil {
		return zero, err
	}

	t.value = value
	t.create = nil
	t.done.Store(true)

	return t.value, nil
}

// Initialized reports whether Get has produced a value.
func (t *OfErr[T]) Initialized() bool {
	return t.done.Load()
}
