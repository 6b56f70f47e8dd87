package virtuallist

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single trailing invocation.
// Each Trigger resets the pending timer; the callback fires only after
// triggers stop for the configured delay. At most one invocation is pending
// at a time.
type Debouncer struct {
	delay    time.Duration
	timer    *time.Timer
	callback func()
	mutex    sync.Mutex
	pending  bool
}

// NewDebouncer creates a new debouncer with the specified delay
func NewDebouncer(delay time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		delay:    delay,
		callback: callback,
	}
}

// Trigger schedules the debounced function, resetting any pending timer
func (d *Debouncer) Trigger() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending = true

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.mutex.Lock()
		fire := d.pending
		d.pending = false
		d.mutex.Unlock()

		// The callback runs outside the lock so it may re-Trigger
		if fire {
			d.callback()
		}
	})
}

// Flush runs the callback immediately if a call is pending
func (d *Debouncer) Flush() {
	d.mutex.Lock()
	fire := d.pending
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mutex.Unlock()

	if fire {
		d.callback()
	}
}

// Cancel cancels any pending debounced call
func (d *Debouncer) Cancel() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// IsPending returns whether a call is pending
func (d *Debouncer) IsPending() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.pending
}

// SetDelay updates the debounce delay for subsequent triggers
func (d *Debouncer) SetDelay(delay time.Duration) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.delay = delay
}
