// Package clock supplies the time source used for component ticks.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time. The runtime reads it once per tick to
// compute the elapsed duration handed to components.
type Clock interface {
	Now() time.Time
}

// Real uses system time.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fake provides controllable time for deterministic tests.
// All methods are safe for concurrent use.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake returns a Fake starting at a fixed epoch.
func NewFake() *Fake {
	return &Fake{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *Fake) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Ticker measures the time between successive ticks.
type Ticker struct {
	clock Clock
	last  time.Time
	begun bool
}

// NewTicker creates a ticker reading from c. A nil clock uses Real.
func NewTicker(c Clock) *Ticker {
	if c == nil {
		c = Real{}
	}
	return &Ticker{clock: c}
}

// Tick returns the time elapsed since the previous call. The first call
// returns zero.
func (t *Ticker) Tick() time.Duration {
	now := t.clock.Now()
	if !t.begun {
		t.begun = true
		t.last = now
		return 0
	}
	dt := now.Sub(t.last)
	t.last = now
	if dt < 0 {
		dt = 0
	}
	return dt
}
