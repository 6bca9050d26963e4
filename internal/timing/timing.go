// Package timing provides the small scheduling primitives the UI leans on:
// throttling for event bursts and generation counters for debounced or
// superseded timers.
package timing

import "time"

// Throttle coalesces a burst of events to at most one pass per window.
// Events arriving inside the window are dropped, not queued.
type Throttle struct {
	window time.Duration
	last   time.Time
}

// NewThrottle returns a throttle with the given window.
func NewThrottle(window time.Duration) *Throttle {
	return &Throttle{window: window}
}

// Allow reports whether an event observed at now should be handled.
// The first event is always allowed.
func (t *Throttle) Allow(now time.Time) bool {
	if t.window <= 0 {
		return true
	}
	if !t.last.IsZero() && now.Sub(t.last) < t.window {
		return false
	}
	t.last = now
	return true
}

// Reset forgets the last handled event so the next one is allowed.
func (t *Throttle) Reset() {
	t.last = time.Time{}
}

// Debounce coalesces bursts through generation numbers. Each Arm call
// invalidates every outstanding generation; a timer that fires carries its
// generation back and checks Live before acting. This is how a burst of
// events collapses to exactly one handling, and how a superseded settle
// timer is discarded.
type Debounce struct {
	seq int
}

// Arm starts a new generation and returns its number.
func (d *Debounce) Arm() int {
	d.seq++
	return d.seq
}

// Live reports whether seq is still the latest generation.
func (d *Debounce) Live(seq int) bool {
	return seq == d.seq
}

// Cancel invalidates all outstanding generations without arming a new one.
func (d *Debounce) Cancel() {
	d.seq++
}
