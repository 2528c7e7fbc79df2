package tui

import (
	"InterestCalc/internal/model"
	"InterestCalc/internal/session"
)

// appliedMsg is sent when a session's debouncer applies new parameters.
type appliedMsg struct {
	kind  model.Kind
	state session.State
}

// exportedMsg reports the outcome of an export.
type exportedMsg struct {
	path string
	err  error
}
