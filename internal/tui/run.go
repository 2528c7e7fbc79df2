package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"InterestCalc/internal/config"
	"InterestCalc/internal/debounce"
	"InterestCalc/internal/report"
)

// Run starts the interactive view and blocks until the user quits.
func Run(cfg *config.Config, exp report.Exporter) error {
	sched := debounce.NewCronScheduler()
	defer sched.Stop()

	m, err := New(Options{Config: cfg, Scheduler: sched, Exporter: exp})
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	m.Notify(p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
