// Package throttle limits how often a handler may run.
package throttle

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttle is a leading-edge limiter. The first call in a window is allowed,
// every other call inside the window is dropped, never queued.
type Throttle struct {
	Limit time.Duration

	lim *rate.Limiter
	now func() time.Time
}

// New returns a throttle with the given window.
func New(limit time.Duration) *Throttle {
	return &Throttle{
		Limit: limit,
		lim:   rate.NewLimiter(rate.Every(limit), 1),
		now:   time.Now,
	}
}

// WithClock swaps the time source, used by tests.
func (t *Throttle) WithClock(now func() time.Time) *Throttle {
	t.now = now
	return t
}

// Allow reports whether a call made now should run.
func (t *Throttle) Allow() bool {
	return t.lim.AllowN(t.now(), 1)
}

// Do runs fn when Allow permits it and reports whether it ran.
func (t *Throttle) Do(fn func()) bool {
	if !t.Allow() {
		return false
	}
	fn()
	return true
}
