package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"InterestCalc/internal/config"
	"InterestCalc/internal/debounce"
	"InterestCalc/internal/model"
	"InterestCalc/internal/report"
	"InterestCalc/internal/session"
)

var sliderFields = []model.Field{model.FieldAmount, model.FieldRate, model.FieldYears}

// chartRow is the focus index of the chart, after the sliders.
var chartRow = len(sliderFields)

const (
	defaultChartWidth = 60
	chartHeight       = 12
)

// tab is one calculator view.
type tab struct {
	kind   model.Kind
	sess   *session.Session
	calc   config.Calculator
	focus  int
	cursor float64 // last chart cursor position, 0..1
}

// Model is the Bubbletea model of the calculator views.
type Model struct {
	tabs     []*tab
	active   int
	currency string
	exporter report.Exporter

	km   keyMap
	help help.Model
	bar  progress.Model

	width  int
	height int
	status string
	err    error
}

// Options configures New.
type Options struct {
	Config    *config.Config
	Scheduler debounce.Scheduler
	Exporter  report.Exporter
}

// New builds one session per calculator from the configured defaults.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	exp := opts.Exporter
	if exp == nil {
		exp = report.NewNoopExporter()
	}

	m := Model{
		currency: cfg.CurrencySymbol,
		exporter: exp,
		km:       defaultKeys(),
		help:     help.New(),
		bar: progress.New(
			progress.WithGradient(string(ColorPrimary), string(ColorSecondary)),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),
	}

	for _, k := range model.Kinds {
		sess, err := session.New(cfg.Params(k), cfg.DebounceInterval(), opts.Scheduler)
		if err != nil {
			m.Close()
			return Model{}, fmt.Errorf("%s calculator: %w", k, err)
		}
		m.tabs = append(m.tabs, &tab{kind: k, sess: sess, calc: cfg.Calculator(k)})
	}
	return m, nil
}

// Notify forwards applied parameter changes to send, typically tea.Program.Send.
func (m Model) Notify(send func(tea.Msg)) {
	for _, t := range m.tabs {
		kind := t.kind
		t.sess.OnChange(func(st session.State) {
			send(appliedMsg{kind: kind, state: st})
		})
	}
}

// Close disposes every session; pending slider values are dropped.
func (m Model) Close() {
	for _, t := range m.tabs {
		t.sess.Close()
	}
}

func (m Model) current() *tab { return m.tabs[m.active] }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case appliedMsg:
		// Redraw only; the view reads the session.
		if msg.kind == m.current().kind {
			m.err = nil
		}

	case exportedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
		} else if msg.path != "" {
			m.err = nil
			m.status = "Exported " + msg.path
		}
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.current()
	switch {
	case key.Matches(msg, m.km.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.km.NextTab):
		m.active = (m.active + 1) % len(m.tabs)
		m.status, m.err = "", nil
	case key.Matches(msg, m.km.PrevTab):
		m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
		m.status, m.err = "", nil
	case key.Matches(msg, m.km.Up):
		t.focus = max(t.focus-1, 0)
	case key.Matches(msg, m.km.Down):
		t.focus = min(t.focus+1, chartRow)
	case key.Matches(msg, m.km.Left):
		m.step(t, -1)
	case key.Matches(msg, m.km.Right):
		m.step(t, 1)
	case key.Matches(msg, m.km.Clear):
		t.sess.ClearSelection()
	case key.Matches(msg, m.km.Export):
		m.status = "Exporting..."
		return m, m.export(t)
	case key.Matches(msg, m.km.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// step moves the focused slider by one step, or the chart cursor by one year.
func (m *Model) step(t *tab, dir float64) {
	st := t.sess.State()
	if t.focus == chartRow {
		if st.Selection != nil && st.Applied.Years > 0 {
			t.cursor += dir / float64(st.Applied.Years)
			t.cursor = min(max(t.cursor, 0), 1)
		}
		t.sess.Drag(t.cursor)
		return
	}

	field := sliderFields[t.focus]
	r, _ := t.calc.Range(field)
	stepSize := r.Step
	if stepSize <= 0 {
		stepSize = (r.Max - r.Min) / 100
	}
	live := st.Live.Get(field)
	next := r.Clamp(live + dir*stepSize)
	if next == live {
		return
	}
	if err := t.sess.Set(field, next); err != nil {
		m.err = err
		return
	}
	m.err = nil
}

// export applies pending slider values, then writes the current view.
// It runs as a command: flushing notifies the program, which must not
// happen from inside Update.
func (m Model) export(t *tab) tea.Cmd {
	sess := t.sess
	exp := m.exporter
	currency := m.currency
	return func() tea.Msg {
		sess.Flush()
		st := sess.State()
		r, err := report.Build(st.Series, st.Selection, currency)
		if err != nil {
			return exportedMsg{err: err}
		}
		path, err := exp.Export(r)
		return exportedMsg{path: path, err: err}
	}
}

// View renders the UI
func (m Model) View() string {
	t := m.current()
	st := t.sess.State()

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	for i, f := range sliderFields {
		b.WriteString(m.renderSlider(t, st, f, i == t.focus))
		b.WriteString("\n")
	}
	if st.Pending > 0 {
		b.WriteString(PendingStyle.Render("updating..."))
	}
	b.WriteString("\n")

	width := defaultChartWidth
	if m.width > 0 {
		width = max(m.width-24, 20)
	}
	panel := ChartPanelStyle
	if t.focus == chartRow {
		panel = FocusedChartPanelStyle
	}
	b.WriteString(panel.Render(renderChart(st.Series, st.Selection, width, chartHeight)))
	b.WriteString("\n")

	b.WriteString(m.renderSummary(st))

	if m.err != nil {
		b.WriteString("\n" + ErrorStyle.Render("Error: "+m.err.Error()))
	} else if m.status != "" {
		b.WriteString("\n" + StatusStyle.Render(m.status))
	}
	b.WriteString("\n" + m.help.View(m.km))
	return b.String()
}

func (m Model) renderTabs() string {
	parts := []string{LogoStyle.Render(Logo) + "  "}
	for i, t := range m.tabs {
		style := TabStyle
		if i == m.active {
			style = ActiveTabStyle
		}
		parts = append(parts, style.Render(t.kind.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderSlider(t *tab, st session.State, f model.Field, focused bool) string {
	r, _ := t.calc.Range(f)
	live := st.Live.Get(f)

	label := fieldLabel(t.kind, f)
	labelStyle := LabelStyle
	if focused {
		labelStyle = FocusedLabelStyle
		label = "› " + label
	}

	var value string
	switch f {
	case model.FieldAmount:
		value = report.Money(m.currency, live)
	case model.FieldRate:
		value = report.Percent(live)
	default:
		value = fmt.Sprintf("%d", int(live))
	}
	return labelStyle.Render(label) + m.bar.ViewAs(r.Fraction(live)) + ValueStyle.Render(value)
}

func (m Model) renderSummary(st session.State) string {
	lines, err := report.Summarize(st.Series)
	if err != nil {
		return ErrorStyle.Render(err.Error())
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(SummaryLabelStyle.Render(l.Label) + SummaryValueStyle.Render(report.Money(m.currency, l.Value)) + "\n")
	}
	if sel := st.Selection; sel != nil {
		b.WriteString(SummaryLabelStyle.Render(fmt.Sprintf("Year %d", sel.Year)) +
			CursorStyle.Render(report.Money(m.currency, sel.Value)) + "\n")
	}
	return b.String()
}

func fieldLabel(k model.Kind, f model.Field) string {
	switch f {
	case model.FieldAmount:
		return k.AmountLabel()
	case model.FieldRate:
		return "Interest rate"
	default:
		return "Years"
	}
}
