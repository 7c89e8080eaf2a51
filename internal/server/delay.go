package server

import (
	"context"
	"time"
)

// Default simulated network latency per verb, matching the reference
// behavior of the virtual server.
const (
	DefaultReadDelay  = 400 * time.Millisecond
	DefaultWriteDelay = 600 * time.Millisecond
)

// DelayStrategy simulates network latency. Implemented by SleepDelay
// (production) and testutil.NopDelay (tests).
type DelayStrategy interface {
	// Wait blocks for the given duration or until the context is
	// cancelled, in which case it returns the context error.
	Wait(ctx context.Context, d time.Duration) error
}

// sleepDelay waits on a real timer.
type sleepDelay struct{}

func (sleepDelay) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SleepDelay returns the real-timer delay strategy.
func SleepDelay() DelayStrategy {
	return sleepDelay{}
}
