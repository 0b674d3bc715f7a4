package scroller

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPacerGatesOnInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPacer(50*time.Millisecond, clock.now)

	if p.Ready() {
		t.Fatal("no step is due right after creation")
	}

	clock.advance(49 * time.Millisecond)
	if p.Ready() {
		t.Fatal("step due before the interval elapsed")
	}

	clock.advance(time.Millisecond)
	if !p.Ready() {
		t.Fatal("step should be due after exactly one interval")
	}
	if p.Ready() {
		t.Fatal("a due step is consumed by Ready")
	}
}

func TestPacerDoesNotCatchUp(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPacer(50*time.Millisecond, clock.now)

	clock.advance(500 * time.Millisecond)
	steps := 0
	for p.Ready() {
		steps++
	}
	if steps != 1 {
		t.Errorf("steps after a long stall = %d, expected 1", steps)
	}
}

func TestPacerReset(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPacer(50*time.Millisecond, clock.now)

	clock.advance(40 * time.Millisecond)
	p.Reset()
	clock.advance(40 * time.Millisecond)
	if p.Ready() {
		t.Error("Reset should restart the interval")
	}
	if p.Interval() != 50*time.Millisecond {
		t.Errorf("interval = %v", p.Interval())
	}
}
