package debounce

import (
	"errors"
	"log"
	"sync"
	"time"
)

// ErrClosed is returned by Commit after Close.
var ErrClosed = errors.New("debouncer closed")

// AssignFunc returns a copy of params with field set to value.
type AssignFunc[T any, K comparable, V any] func(params T, field K, value V) (T, error)

type pendingUpdate[V any] struct {
	token Token
	seq   uint64
	value V
}

// Debouncer keeps a live and an applied copy of a parameter set T.
// Commit updates the live copy at once and schedules the applied copy to follow
// after a quiet interval. Every field K has its own timer; a new commit of the
// same field replaces the pending one, so only the last value is ever applied.
type Debouncer[T any, K comparable, V any] struct {
	sched    Scheduler
	interval time.Duration
	assign   AssignFunc[T, K, V]
	validate func(T) error

	mu      sync.Mutex
	live    T
	applied T
	pending map[K]pendingUpdate[V]
	seq     uint64
	applies int
	closed  bool
	onApply func(applied T, field K)
}

// New creates a Debouncer whose live and applied copies both start at initial.
func New[T any, K comparable, V any](initial T, interval time.Duration, sched Scheduler, assign AssignFunc[T, K, V]) *Debouncer[T, K, V] {
	return &Debouncer[T, K, V]{
		sched:    sched,
		interval: interval,
		assign:   assign,
		live:     initial,
		applied:  initial,
		pending:  make(map[K]pendingUpdate[V]),
	}
}

// SetValidator installs a check run on the live copy before a commit is accepted.
func (d *Debouncer[T, K, V]) SetValidator(fn func(T) error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.validate = fn
}

// OnApply registers a callback invoked after the applied copy changes.
// It runs on the scheduler's goroutine, outside the debouncer's lock.
func (d *Debouncer[T, K, V]) OnApply(fn func(applied T, field K)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onApply = fn
}

// Commit sets field on the live copy and (re)starts that field's timer.
// Rejected values leave both copies and any pending timer untouched.
func (d *Debouncer[T, K, V]) Commit(field K, value V) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrClosed
	}

	next, err := d.assign(d.live, field, value)
	if err != nil {
		return err
	}
	if d.validate != nil {
		if err := d.validate(next); err != nil {
			return err
		}
	}
	d.live = next

	if p, ok := d.pending[field]; ok {
		d.sched.Cancel(p.token)
	}
	d.seq++
	seq := d.seq
	tok := d.sched.ScheduleOnce(d.interval, func() { d.fire(field, seq) })
	d.pending[field] = pendingUpdate[V]{token: tok, seq: seq, value: value}
	return nil
}

func (d *Debouncer[T, K, V]) fire(field K, seq uint64) {
	d.mu.Lock()
	p, ok := d.pending[field]
	if d.closed || !ok || p.seq != seq {
		// Superseded or cancelled after the timer already started.
		d.mu.Unlock()
		return
	}
	delete(d.pending, field)
	applied, cb, ok := d.applyLocked(field, p.value)
	d.mu.Unlock()

	if ok && cb != nil {
		cb(applied, field)
	}
}

func (d *Debouncer[T, K, V]) applyLocked(field K, value V) (T, func(T, K), bool) {
	next, err := d.assign(d.applied, field, value)
	if err != nil {
		log.Printf("[ERROR] debounce apply %v: %v", field, err)
		return d.applied, nil, false
	}
	d.applied = next
	d.applies++
	return next, d.onApply, true
}

// Flush applies every pending value immediately.
func (d *Debouncer[T, K, V]) Flush() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	type applied struct {
		params T
		field  K
	}
	var done []applied
	var cb func(T, K)
	for field, p := range d.pending {
		d.sched.Cancel(p.token)
		delete(d.pending, field)
		params, fn, ok := d.applyLocked(field, p.value)
		if ok {
			done = append(done, applied{params, field})
			cb = fn
		}
	}
	d.mu.Unlock()

	if cb != nil {
		for _, a := range done {
			cb(a.params, a.field)
		}
	}
}

// Close cancels every pending update. Updates that were scheduled but not yet
// applied never run.
func (d *Debouncer[T, K, V]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	n := len(d.pending)
	for field, p := range d.pending {
		d.sched.Cancel(p.token)
		delete(d.pending, field)
	}
	if n > 0 {
		log.Printf("[INFO] debouncer closed, dropped %d pending update(s)", n)
	}
}

// Live returns the most recently committed values.
func (d *Debouncer[T, K, V]) Live() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.live
}

// Applied returns the values computations should read.
func (d *Debouncer[T, K, V]) Applied() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.applied
}

// Pending reports how many fields are waiting for their timer.
func (d *Debouncer[T, K, V]) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Applies counts how many updates reached the applied copy.
func (d *Debouncer[T, K, V]) Applies() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.applies
}
