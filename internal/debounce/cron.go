package debounce

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// onceSchedule fires at a fixed instant and never again.
type onceSchedule struct {
	at   time.Time
	used atomic.Bool
}

func (o *onceSchedule) Next(time.Time) time.Time {
	if o.used.Swap(true) {
		return time.Time{}
	}
	return o.at
}

type cronEntry struct {
	id     cron.EntryID
	stored bool
}

// CronScheduler runs debounce callbacks on a robfig/cron runner.
// Each callback is a one-shot entry that is removed once it fires or is cancelled.
type CronScheduler struct {
	Cron *cron.Cron

	mu      sync.Mutex
	next    Token
	pending map[Token]*cronEntry
}

// NewCronScheduler creates and starts the runner.
func NewCronScheduler() *CronScheduler {
	logger := cron.PrintfLogger(log.Default())
	s := &CronScheduler{
		Cron:    cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger))),
		pending: make(map[Token]*cronEntry),
	}
	// Entries must be added to a running cron: Start re-evaluates every
	// schedule and would consume the single Next of a onceSchedule.
	s.Cron.Start()
	return s
}

// ScheduleOnce runs fn once after delay on the cron goroutine pool.
func (s *CronScheduler) ScheduleOnce(delay time.Duration, fn func()) Token {
	s.mu.Lock()
	s.next++
	tok := s.next
	s.pending[tok] = &cronEntry{}
	s.mu.Unlock()

	job := cron.FuncJob(func() {
		s.mu.Lock()
		e, ok := s.pending[tok]
		delete(s.pending, tok)
		s.mu.Unlock()
		if !ok {
			return
		}
		if e.stored {
			s.Cron.Remove(e.id)
		}
		fn()
	})
	id := s.Cron.Schedule(&onceSchedule{at: time.Now().Add(delay)}, job)

	s.mu.Lock()
	e, ok := s.pending[tok]
	if ok {
		e.id = id
		e.stored = true
	}
	s.mu.Unlock()
	if !ok {
		// Fired or cancelled before the id was known.
		s.Cron.Remove(id)
	}
	return tok
}

// Cancel prevents a scheduled callback from running. Unknown tokens are ignored.
func (s *CronScheduler) Cancel(tok Token) {
	s.mu.Lock()
	e, ok := s.pending[tok]
	delete(s.pending, tok)
	s.mu.Unlock()
	if ok && e.stored {
		s.Cron.Remove(e.id)
	}
}

// Pending reports how many callbacks are waiting to fire.
func (s *CronScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop cancels everything and stops the runner, waiting for running callbacks.
func (s *CronScheduler) Stop() {
	s.mu.Lock()
	for tok, e := range s.pending {
		if e.stored {
			s.Cron.Remove(e.id)
		}
		delete(s.pending, tok)
	}
	s.mu.Unlock()
	<-s.Cron.Stop().Done()
	log.Println("[INFO] debounce scheduler stopped")
}
