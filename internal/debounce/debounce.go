// Package debounce provides a trailing-edge debouncer: a burst of Trigger
// calls results in a single invocation with the last value, once the input
// has been quiet for the configured delay.
package debounce

import (
	"sync"
	"time"

	"github.com/ziadkadry99/ffsite/internal/clock"
)

// DefaultDelay is the search-input settle time.
const DefaultDelay = 300 * time.Millisecond

// Debouncer delays calls to fn until input settles. Safe for concurrent use.
type Debouncer[T any] struct {
	delay time.Duration
	clock clock.Clock
	fn    func(T)

	mu    sync.Mutex
	timer clock.Timer
	gen   uint64
}

// Option configures a Debouncer.
type Option[T any] func(*Debouncer[T])

// WithClock overrides the clock used for scheduling.
func WithClock[T any](c clock.Clock) Option[T] {
	return func(d *Debouncer[T]) { d.clock = c }
}

// New creates a Debouncer that calls fn with the settled value. A delay <= 0
// uses DefaultDelay.
func New[T any](delay time.Duration, fn func(T), opts ...Option[T]) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	d := &Debouncer[T]{delay: delay, clock: clock.Real{}, fn: fn}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delay returns the configured settle time.
func (d *Debouncer[T]) Delay() time.Duration { return d.delay }

// Trigger records v as the latest input. Any pending call is cancelled and
// the delay restarts.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if gen != d.gen {
			// superseded between firing and acquiring the lock
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.fn(v)
	})
}

// Flush cancels any pending call and invokes fn with v immediately, on the
// caller's goroutine.
func (d *Debouncer[T]) Flush(v T) {
	d.Cancel()
	d.fn(v)
}

// Cancel drops any pending call without invoking fn.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.gen++
}

// Pending reports whether a call is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
