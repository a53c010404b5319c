// Package debounce coalesces bursts of input events into a single
// trailing invocation.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs a function once the configured delay has elapsed with
// no further calls. Each call cancels the previously scheduled timer and
// schedules a new one; only the timer that fires uncancelled runs.
// Leading events are discarded, not queued.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// New creates a debouncer with the given trailing delay.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn to run after the delay, replacing any pending
// invocation. fn runs on a timer goroutine.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending invocation. It does not wait for a running
// fn to return.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
