package server

import "time"

// Clock supplies wall-clock timestamps for orders, streak updates, and the
// event log. Implemented by the system clock (production) and
// testutil.TickingClock (tests).
type Clock interface {
	Now() time.Time
}

// systemClock reads the real wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the real wall clock.
func SystemClock() Clock {
	return systemClock{}
}
