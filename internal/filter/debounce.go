package filter

import (
	"sync"
	"time"
)

// DebounceDelay is the quiet period before a search term propagates.
const DebounceDelay = 300 * time.Millisecond

// Debouncer delays fn until the delay has passed without another Do
// call. At most one timer is pending at any time; a new call stops the
// previous one, so only the final value in a burst ever fires.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Do schedules fn, cancelling any pending one.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
