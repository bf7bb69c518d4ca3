// Package types provides shared types used across the filequery codebase.
package types

import "context"

// Optional holds a value that may be left unset by the caller.
// An explicitly set zero value ("" or false) is distinct from unset.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

// None returns an unset Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// IsSet reports whether a value was supplied, including a zero value.
func (o Optional[T]) IsSet() bool { return o.set }

// Value returns the held value, or the zero value if unset.
func (o Optional[T]) Value() T { return o.value }

// Get returns the held value and whether it was set.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// OrElse returns the held value if set, otherwise def.
func (o Optional[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Semaphore implements a counting semaphore using a buffered channel.
// It limits concurrent access to a resource by blocking when the limit is reached.
type Semaphore chan struct{}

// NewSemaphore creates a semaphore that allows up to n concurrent acquisitions.
func NewSemaphore(n int) Semaphore { return make(chan struct{}, n) }

// Acquire blocks until a slot is available, then claims it.
func (s Semaphore) Acquire() { s <- struct{}{} }

// AcquireContext blocks until a slot is available or ctx is done.
func (s Semaphore) AcquireContext(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot, unblocking one waiting Acquire call.
func (s Semaphore) Release() { <-s }
