package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"InterestCalc/internal/config"
	"InterestCalc/internal/debounce"
	"InterestCalc/internal/model"
	"InterestCalc/internal/report"
)

func newTestModel(t *testing.T) (Model, *debounce.ManualScheduler) {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	sched := debounce.NewManualScheduler()
	m, err := New(Options{Config: cfg, Scheduler: sched})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m, sched
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestSliderCommitsThroughDebouncer(t *testing.T) {
	m, sched := newTestModel(t)

	// Focus years and raise it twice.
	m = press(t, m, keyDown, keyDown, keyRight, keyRight)
	st := m.current().sess.State()
	if st.Live.Years != 32 {
		t.Fatalf("live years = %d, want 32", st.Live.Years)
	}
	if st.Applied.Years != 30 {
		t.Fatalf("applied years = %d, want 30 before the interval", st.Applied.Years)
	}

	sched.Advance(250 * time.Millisecond)
	if got := m.current().sess.State().Series.Len(); got != 33 {
		t.Errorf("series length = %d, want 33", got)
	}
}

func TestSliderClampsToRange(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, keyDown) // rate, default 8, min 1
	for i := 0; i < 40; i++ {
		m = press(t, m, keyLeft)
	}
	if got := m.current().sess.State().Live.AnnualRatePercent; got != 1 {
		t.Errorf("rate = %v, want clamped to 1", got)
	}
}

func TestChartCursorAndClear(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, keyDown, keyDown, keyDown) // chart
	if m.current().focus != chartRow {
		t.Fatalf("focus = %d, want chart", m.current().focus)
	}

	m = press(t, m, keyRight) // first press selects at the cursor
	sel := m.current().sess.State().Selection
	if sel == nil || sel.Year != 0 {
		t.Fatalf("selection = %+v, want year 0", sel)
	}
	m = press(t, m, keyRight, keyRight, keyRight)
	sel = m.current().sess.State().Selection
	if sel == nil || sel.Year != 3 {
		t.Fatalf("selection = %+v, want year 3", sel)
	}
	if !strings.Contains(m.View(), "▲") {
		t.Error("view has no cursor marker")
	}

	m = press(t, m, keyEsc)
	if sel := m.current().sess.State().Selection; sel != nil {
		t.Errorf("selection = %+v after esc, want nil", sel)
	}
}

func TestSliderChangeClearsSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, keyDown, keyDown, keyDown, keyRight)
	if m.current().sess.State().Selection == nil {
		t.Fatal("no selection")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, keyRight)
	if sel := m.current().sess.State().Selection; sel != nil {
		t.Errorf("selection = %+v after slider change, want nil", sel)
	}
}

func TestTabsAndQuit(t *testing.T) {
	m, sched := newTestModel(t)
	m = press(t, m, keyTab)
	if m.current().kind != model.KindLoan {
		t.Fatalf("active = %s, want loan", m.current().kind)
	}
	if !strings.Contains(m.View(), "Monthly payment") {
		t.Error("loan view has no monthly payment")
	}

	m = press(t, m, keyRight) // loan amount +100
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}

	sched.Advance(time.Second)
	if got := next.(Model).current().sess.State().Applied.Amount; got != 20000 {
		t.Errorf("applied loan amount = %v, want 20000 (pending update must be dropped)", got)
	}
}

func TestRenderChartAxis(t *testing.T) {
	if got := column(30, 30, 60); got != 59 {
		t.Errorf("column(30) = %d, want 59", got)
	}
	if got := column(0, 30, 60); got != 0 {
		t.Errorf("column(0) = %d, want 0", got)
	}
	axis := yearAxis(30, 60)
	for _, want := range []string{"0", "10", "20", "30"} {
		if !strings.Contains(axis, want) {
			t.Errorf("axis %q missing %s", axis, want)
		}
	}
}

func TestExportAppliesPendingValues(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	sched := debounce.NewManualScheduler()
	m, err := New(Options{Config: cfg, Scheduler: sched, Exporter: &report.CSVExporter{Dir: dir}})
	if err != nil {
		t.Fatal(err)
	}

	m = press(t, m, keyDown, keyDown, keyRight) // years 30 -> 31, still pending
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	if cmd == nil {
		t.Fatal("export returned no command")
	}
	res := cmd()
	msg, ok := res.(exportedMsg)
	if !ok {
		t.Fatalf("command returned %T, want exportedMsg", res)
	}
	if msg.err != nil {
		t.Fatalf("export: %v", msg.err)
	}

	st := m.current().sess.State()
	if st.Applied.Years != 31 || st.Pending != 0 {
		t.Errorf("applied years = %d, pending = %d; want 31 and 0", st.Applied.Years, st.Pending)
	}
	data, err := os.ReadFile(msg.path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n31,") {
		t.Errorf("export does not contain year 31:\n%s", data)
	}
	if got := sched.Pending(); got != 0 {
		t.Errorf("scheduler pending = %d, want 0", got)
	}
}
