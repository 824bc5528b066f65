package artfetch

import (
	"context"
	"sync"
)

// task implements Handle for a single fetch goroutine.
type task struct {
	mu        sync.Mutex
	cancelled bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// Cancel implements Handle. After it returns the DoneFunc of the fetch will not
// be called. A DoneFunc which is already running is not waited for.
func (t *task) Cancel() {
	t.mu.Lock()
	t.cancelled = true
	t.mu.Unlock()

	t.cancel()
}

// Done implements Handle.
func (t *task) Done() <-chan struct{} {
	return t.done
}

// deliver runs f unless the task was cancelled.
func (t *task) deliver(f func()) {
	t.mu.Lock()
	if t.cancelled {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	f()
}
