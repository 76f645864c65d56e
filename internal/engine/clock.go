package engine

import "sync/atomic"

// Clock is a monotonic logical clock.
//
// Every recorded action is stamped with a strictly increasing seq from one
// session clock, and renderers feed the same logical ticks to animated
// effects. No wall time enters the system anywhere, which is what lets a
// replayed session reproduce the original output byte for byte.
//
// Clock is safe for concurrent use, though a session normally drives it
// from a single goroutine.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0; the first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock resuming from a known position, for picking a
// session back up at its last recorded tick.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next increments the clock and returns the new tick. Each call returns a
// unique, strictly increasing value.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the latest tick without advancing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
