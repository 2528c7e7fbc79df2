package debounce

import (
	"sync"
	"time"
)

type manualTimer struct {
	due time.Duration
	fn  func()
}

// ManualScheduler is a Scheduler driven by an explicit clock.
// Callbacks run only inside Advance, in due order.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	next   Token
	timers map[Token]*manualTimer
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{timers: make(map[Token]*manualTimer)}
}

func (m *ManualScheduler) ScheduleOnce(delay time.Duration, fn func()) Token {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	m.timers[m.next] = &manualTimer{due: m.now + delay, fn: fn}
	return m.next
}

func (m *ManualScheduler) Cancel(tok Token) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.timers, tok)
}

// Advance moves the clock forward by d, running every callback that falls due.
// Callbacks scheduled while advancing run too if they fall due before the target.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		var (
			tok   Token
			timer *manualTimer
		)
		for k, t := range m.timers {
			if t.due > target {
				continue
			}
			if timer == nil || t.due < timer.due || (t.due == timer.due && k < tok) {
				tok, timer = k, t
			}
		}
		if timer == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		delete(m.timers, tok)
		m.now = timer.due
		m.mu.Unlock()

		timer.fn()
	}
}

// Pending reports how many callbacks are waiting.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Elapsed is the clock's position.
func (m *ManualScheduler) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}
