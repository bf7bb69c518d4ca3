package types

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Section 1: Optional[T] Tests
// =============================================================================

// TestOptionalUnset tests that the zero Optional is unset.
func TestOptionalUnset(t *testing.T) {
	var o Optional[string]
	assert.False(t, o.IsSet())
	assert.Equal(t, "", o.Value())
	assert.Equal(t, "fallback", o.OrElse("fallback"))
	assert.Equal(t, None[string](), o)
}

// TestOptionalExplicitZero tests that an explicitly set zero value is kept.
func TestOptionalExplicitZero(t *testing.T) {
	s := Some("")
	assert.True(t, s.IsSet())
	assert.Equal(t, "", s.OrElse("fallback"))

	b := Some(false)
	v, ok := b.Get()
	assert.True(t, ok)
	assert.False(t, v)
	assert.False(t, b.OrElse(true))
}

// TestOptionalComparable tests that Optionals of comparable types compare by value.
func TestOptionalComparable(t *testing.T) {
	assert.Equal(t, Some(true), Some(true))
	assert.NotEqual(t, Some(false), None[bool]())
}

// =============================================================================
// Section 2: Semaphore Tests
// =============================================================================

// TestSemaphoreBasic tests basic semaphore acquire/release.
func TestSemaphoreBasic(t *testing.T) {
	sem := NewSemaphore(2)

	// Should be able to acquire twice without blocking
	sem.Acquire()
	sem.Acquire()

	// Release one
	sem.Release()

	// Should be able to acquire again
	sem.Acquire()

	// Clean up
	sem.Release()
	sem.Release()
}

// TestSemaphoreAcquireContextCanceled tests that a full semaphore honours cancellation.
func TestSemaphoreAcquireContextCanceled(t *testing.T) {
	sem := NewSemaphore(1)
	sem.Acquire()
	defer sem.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := sem.AcquireContext(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestSemaphoreAcquireContextFree tests that a free slot is claimed immediately.
func TestSemaphoreAcquireContextFree(t *testing.T) {
	sem := NewSemaphore(1)
	require.NoError(t, sem.AcquireContext(context.Background()))
	sem.Release()
}
