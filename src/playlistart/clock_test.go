package playlistart_test

import (
	"sync"
	"time"

	"github.com/ironsmile/mosaic/src/playlistart"
)

// fakeClock is a virtual clock which implements playlistart.Scheduler. Time
// only moves when Advance is called and due timers run synchronously in the
// calling goroutine.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock  *fakeClock
	at     time.Duration
	f      func()
	active bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	wasActive := t.active
	t.active = false
	return wasActive
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) playlistart.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{
		clock:  c,
		at:     c.now + d,
		f:      f,
		active: true,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, running every timer which becomes due
// in the order of their deadlines.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var next *fakeTimer
		for _, t := range c.timers {
			if !t.active || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}

		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}

		c.now = next.at
		next.active = false
		c.mu.Unlock()

		next.f()
	}
}

// Pending returns the number of timers which have not run or been stopped.
func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var pending int
	for _, t := range c.timers {
		if t.active {
			pending++
		}
	}
	return pending
}
