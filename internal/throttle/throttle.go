// Package throttle rate-limits a callback against a stream of high-frequency
// events with a trailing-edge guarantee: the last event in a burst always
// produces one deferred invocation.
package throttle

import (
	"fmt"
	"sync"
	"time"
)

// Dispatcher admits at most one invocation of its callback per sliding window.
// An idle window yields one scheduled leading invocation; events arriving
// during the cool-down coalesce into exactly one trailing invocation carrying
// the most recent value. Invocations are never synchronous with Call.
type Dispatcher[T any] struct {
	interval time.Duration
	fn       func(T)

	mu        sync.Mutex
	timer     *time.Timer
	last      T
	windowEnd time.Time
	stopped   bool
}

// New creates a dispatcher for fn. The interval must be positive and fn
// non-nil; both are configuration errors reported here, not at first Call.
func New[T any](interval time.Duration, fn func(T)) (*Dispatcher[T], error) {
	if interval <= 0 {
		return nil, fmt.Errorf("throttle: interval must be positive, got %v", interval)
	}
	if fn == nil {
		return nil, fmt.Errorf("throttle: callback must not be nil")
	}
	return &Dispatcher[T]{interval: interval, fn: fn}, nil
}

// Call records v as the most recent value and schedules an invocation if none
// is pending. Outside the cool-down window the invocation fires immediately
// (but still asynchronously); inside it, a single trailing invocation fires at
// the window's end. Call after Stop is a no-op.
func (d *Dispatcher[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.last = v
	if d.timer != nil {
		// An invocation is already scheduled; it picks up d.last.
		return
	}
	delay := time.Until(d.windowEnd)
	if delay < 0 {
		delay = 0
	}
	d.timer = time.AfterFunc(delay, d.fire)
}

func (d *Dispatcher[T]) fire() {
	d.mu.Lock()
	if d.stopped || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.windowEnd = time.Now().Add(d.interval)
	v := d.last
	fn := d.fn
	d.mu.Unlock()
	fn(v)
}

// Pending reports whether an invocation is currently scheduled.
func (d *Dispatcher[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending invocation and detaches the dispatcher. Idempotent.
// After Stop returns no further invocation is started, so a disposed consumer
// is never called into.
func (d *Dispatcher[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
