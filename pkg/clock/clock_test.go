package clock

import (
	"testing"
	"time"
)

func TestManualAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManual(start)

	m.Advance(250 * time.Millisecond)
	m.Advance(250 * time.Millisecond)
	if got := m.Now().Sub(start); got != 500*time.Millisecond {
		t.Fatalf("elapsed = %v, want 500ms", got)
	}

	m.Set(start)
	if !m.Now().Equal(start) {
		t.Fatalf("Set did not rewind: %v", m.Now())
	}
}

func TestWallMonotonic(t *testing.T) {
	var w Wall
	a := w.Now()
	b := w.Now()
	if b.Before(a) {
		t.Fatalf("wall clock went backwards: %v then %v", a, b)
	}
}
