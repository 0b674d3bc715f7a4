package scroller

import "time"

// Pacer gates simulation steps on a wall clock.
// Each Ready call that has waited at least one interval yields exactly one
// step; time missed while the caller was busy is not caught up.
type Pacer struct {
	interval time.Duration
	now      func() time.Time
	last     time.Time
}

// NewPacer creates a pacer. A nil clock uses time.Now.
func NewPacer(interval time.Duration, now func() time.Time) *Pacer {
	if now == nil {
		now = time.Now
	}
	p := &Pacer{interval: interval, now: now}
	p.Reset()
	return p
}

// Reset restarts the interval from the current time.
// Call it after a modal screen so the next step waits a full interval.
func (p *Pacer) Reset() {
	p.last = p.now()
}

// Ready reports whether a step is due and, if so, starts the next interval.
func (p *Pacer) Ready() bool {
	now := p.now()
	if now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}

// Interval returns the gate duration.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}
