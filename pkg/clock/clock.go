// Package clock provides the time sources used by the simulation.
package clock

import (
	"sync"
	"time"
)

// Provider returns monotonic time readings.
type Provider interface {
	Now() time.Time
}

// Wall reads the system clock. time.Now carries a monotonic reading, so
// differences between two readings are immune to wall clock jumps.
type Wall struct{}

func (Wall) Now() time.Time {
	return time.Now()
}

// Manual is a clock that only moves when told to. The game loop advances it
// by each simulated tick, so paused time never elapses and replays see the
// same readings.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set jumps the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
