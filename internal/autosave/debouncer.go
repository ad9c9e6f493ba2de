// Package autosave provides the debounce timer that coalesces rapid edit
// events into a single save.
package autosave

import (
	"sync"
	"time"
)

// DefaultQuiet is the quiet period after the last edit before a save fires.
const DefaultQuiet = 650 * time.Millisecond

// Debouncer arms a single-shot timer on every Notify; bursts within the
// quiet period collapse into one callback. Re-arming the timer is the only
// cancellation primitive needed.
type Debouncer struct {
	quiet time.Duration
	fn    func()

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	running bool
}

func New(quiet time.Duration, fn func()) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer{quiet: quiet, fn: fn}
}

// Notify records an edit event and (re-)arms the timer.
func (d *Debouncer) Notify() {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.pending = true
	if d.timer == nil {
		d.timer = time.AfterFunc(d.quiet, d.onTimer)
		d.mu.Unlock()
		return
	}
	d.timer.Reset(d.quiet)
	d.mu.Unlock()
}

// Flush runs the callback immediately if an edit is pending and disarms the
// timer. Used when the save must not wait: manual save, switching the
// active note, delete, quit.
func (d *Debouncer) Flush() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fn()
}

// Stop disarms any pending timer without running the callback.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
}

func (d *Debouncer) onTimer() {
	d.mu.Lock()
	if d.running {
		// A run is in flight; pick the pending edit up afterwards.
		if d.timer != nil {
			d.timer.Reset(d.quiet)
		}
		d.mu.Unlock()
		return
	}
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.running = true
	d.mu.Unlock()

	d.fn()

	d.mu.Lock()
	d.running = false
	if d.pending && d.timer != nil {
		d.timer.Reset(d.quiet)
	}
	d.mu.Unlock()
}
