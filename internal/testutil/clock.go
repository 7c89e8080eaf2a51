// Package testutil provides deterministic substitutes for the server's
// injectable collaborators: the wall clock and the latency simulation.
package testutil

import (
	"context"
	"sync"
	"time"
)

// TickingClock is a deterministic wall clock for tests. Each Now() call
// returns the current instant and advances it by a fixed step, so
// timestamps taken in sequence are strictly increasing and reproducible.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type TickingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewTickingClock creates a clock starting at the given instant, advancing
// by step per Now() call. A zero step freezes the clock.
func NewTickingClock(start time.Time, step time.Duration) *TickingClock {
	return &TickingClock{now: start, step: step}
}

// Now returns the current instant and advances the clock.
func (c *TickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

// Set repositions the clock. Used to test time-of-day behavior.
func (c *TickingClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// NopDelay skips the simulated network latency entirely, only honoring
// context cancellation. Implements server.DelayStrategy.
type NopDelay struct{}

// Wait returns immediately, or the context error if already cancelled.
func (NopDelay) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
