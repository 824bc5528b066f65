package playlistart

import "time"

// Timer is a pending single-shot task of a Scheduler.
type Timer interface {
	// Stop prevents the task from running. It returns false if the task has
	// already run or has been stopped.
	Stop() bool
}

// Scheduler runs functions after a delay. The Builder uses it for its debounce
// and watchdog timers.
type Scheduler interface {
	// AfterFunc runs f in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler is a Scheduler backed by the runtime timers.
type RealScheduler struct{}

// AfterFunc implements Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// stopTimer stops t if there is one.
func stopTimer(t Timer) {
	if t != nil {
		t.Stop()
	}
}
