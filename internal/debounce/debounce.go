// Package debounce delays propagation of a changing value until it has been
// stable for a fixed interval.
package debounce

import (
	"sync"
	"time"
)

// Option configures a Debouncer
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock replaces the runtime timer, mostly for tests
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// Debouncer holds an input value and an output value that trails it.
// At most one timer is armed at any time: every Set stops the previous
// timer before arming the next one.
type Debouncer[T comparable] struct {
	mu       sync.Mutex
	clock    Clock
	delay    time.Duration
	input    T
	output   T
	timer    Timer
	gen      uint64
	onSettle func(T)
}

// New creates a debouncer whose output starts at initial. onSettle, if not nil,
// is called outside the lock each time the output changes.
func New[T comparable](initial T, delay time.Duration, onSettle func(T), opts ...Option) *Debouncer[T] {
	o := options{clock: RealClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	if delay < 0 {
		delay = 0
	}
	return &Debouncer[T]{
		clock:    o.clock,
		delay:    delay,
		input:    initial,
		output:   initial,
		onSettle: onSettle,
	}
}

// Set records a new input and restarts the wait
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if v == d.input {
		return
	}
	d.input = v
	d.cancelLocked()

	// Back to the settled value: nothing left to propagate.
	if v == d.output {
		return
	}

	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Value returns the debounced output
func (d *Debouncer[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.output
}

// Input returns the latest raw input
func (d *Debouncer[T]) Input() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.input
}

// Pending reports whether an update is scheduled
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Flush settles the pending input immediately. It reports whether the output changed.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return false
	}
	d.cancelLocked()
	return d.settleLocked()
}

// Stop cancels any pending update; the output keeps its current value
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer[T]) cancelLocked() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire runs on the timer's goroutine. A callback that lost the race with
// Stop/Set sees a newer generation and does nothing.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.settleLocked()
}

// settleLocked copies input to output and releases the lock before notifying
func (d *Debouncer[T]) settleLocked() bool {
	changed := d.output != d.input
	d.output = d.input
	v := d.output
	cb := d.onSettle
	d.mu.Unlock()

	if changed && cb != nil {
		cb(v)
	}
	return changed
}
