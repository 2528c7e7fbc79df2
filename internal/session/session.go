package session

import (
	"fmt"
	"log"
	"sync"
	"time"

	"InterestCalc/internal/calculator"
	"InterestCalc/internal/debounce"
	"InterestCalc/internal/model"
	"InterestCalc/internal/projection"
	"InterestCalc/internal/selection"
)

// State is a snapshot of one calculator session.
type State struct {
	Live      model.Parameters
	Applied   model.Parameters
	Series    projection.Series
	Selection *model.Selection
	Pending   int
}

// Session wires live parameters through the debouncer into a chart series
// and its selection. It is safe for concurrent use: debounce timers fire on
// their own goroutines.
type Session struct {
	deb *debounce.Debouncer[model.Parameters, model.Field, float64]

	mu       sync.Mutex
	series   projection.Series
	tracker  selection.Tracker
	onChange func(State)
}

// New validates initial and builds its series. Live and applied parameters
// both start at initial.
func New(initial model.Parameters, interval time.Duration, sched debounce.Scheduler) (*Session, error) {
	series, err := projection.GenerateFor(initial)
	if err != nil {
		return nil, fmt.Errorf("initial %s parameters: %w", initial.Kind, err)
	}

	s := &Session{series: series}
	s.deb = debounce.New(initial, interval, sched, model.Parameters.With)
	s.deb.SetValidator(calculator.ValidateParameters)
	s.deb.OnApply(s.applied)
	return s, nil
}

func (s *Session) applied(p model.Parameters, field model.Field) {
	series, err := projection.GenerateFor(p)
	if err != nil {
		log.Printf("[ERROR] %s: regenerate series after %s change: %v", p.Kind, field, err)
		return
	}

	s.mu.Lock()
	s.series = series
	s.tracker.Clear()
	cb := s.onChange
	state := s.stateLocked()
	s.mu.Unlock()

	if cb != nil {
		cb(state)
	}
}

// Kind is the calculator this session drives.
func (s *Session) Kind() model.Kind { return s.deb.Live().Kind }

// Set commits a live value for field. Invalid values are rejected and leave
// the session unchanged; accepted values clear the selection.
func (s *Session) Set(field model.Field, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.deb.Commit(field, value); err != nil {
		return err
	}
	s.tracker.Clear()
	return nil
}

// Drag selects the year under a pointer at normalizedX (0..1 across the chart).
func (s *Session) Drag(normalizedX float64) *model.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Drag(normalizedX, s.series)
}

// ClearSelection drops the selection, e.g. when the pointer leaves the chart.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.Clear()
}

// State returns a snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	return State{
		Live:      s.deb.Live(),
		Applied:   s.deb.Applied(),
		Series:    s.series,
		Selection: s.tracker.Current(),
		Pending:   s.deb.Pending(),
	}
}

// OnChange registers a callback run whenever applied parameters change.
// It runs on the timer goroutine.
func (s *Session) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Flush applies every pending value now.
func (s *Session) Flush() { s.deb.Flush() }

// Close cancels pending updates. The session keeps answering State afterwards.
func (s *Session) Close() { s.deb.Close() }
