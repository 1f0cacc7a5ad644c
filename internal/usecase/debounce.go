package usecase

import (
	"sync"
	"time"
)

// Debouncer runs a task after a quiet period, trailing-edge: scheduling a
// new task cancels any pending one, so only the last task within the window
// fires. A zero interval runs tasks synchronously, which keeps the HTTP
// path and tests deterministic.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Schedule cancels any pending task and schedules fn after the interval.
func (d *Debouncer) Schedule(fn func()) {
	if d.interval <= 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending task without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
