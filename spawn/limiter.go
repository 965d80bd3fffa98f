package spawn

import (
	"time"

	"github.com/zeromvx/irys3drace/pkg/clock"
)

// Cooldown lets one event through per interval of the given clock.
type Cooldown struct {
	clock    clock.Provider
	interval time.Duration
	last     time.Time
	armed    bool
}

// NewCooldown creates a cooldown that allows one event per interval
func NewCooldown(c clock.Provider, interval time.Duration) *Cooldown {
	return &Cooldown{clock: c, interval: interval}
}

// Ready reports whether an event may fire now without consuming the window.
func (c *Cooldown) Ready() bool {
	return !c.armed || c.clock.Now().Sub(c.last) >= c.interval
}

// Take consumes the window if it is open.
func (c *Cooldown) Take() bool {
	if !c.Ready() {
		return false
	}
	c.last = c.clock.Now()
	c.armed = true
	return true
}

// Reset opens the window immediately.
func (c *Cooldown) Reset() {
	c.armed = false
	c.last = time.Time{}
}
