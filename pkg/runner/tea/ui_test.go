package teaui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

func newTestModel(t *testing.T, texts ...string) (Model, *tasklist.Store) {
	t.Helper()
	s := tasklist.New(store.NewMemory())
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	for _, text := range texts {
		if _, err := s.AddTask(text); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	m := New(s)
	m.termWidth = 80
	return m, s
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEscape}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func states(s *tasklist.Store) string {
	parts := []string{}
	for _, t := range s.Tasks() {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		parts = append(parts, mark+t.Text)
	}
	return strings.Join(parts, ",")
}

func TestViewEmptyList(t *testing.T) {
	m, _ := newTestModel(t)
	view := stripANSI(m.View())
	if !strings.Contains(view, "No tasks found") {
		t.Fatalf("expected empty message; view=%q", view)
	}
	if !strings.Contains(view, "0 tasks left") {
		t.Fatalf("expected count; view=%q", view)
	}
}

func TestAddThroughInput(t *testing.T) {
	m, s := newTestModel(t)
	m = press(t, m, runes("a"), runes("buy milk"), enter, esc)
	if got := states(s); got != " buy milk" {
		t.Fatalf("unexpected tasks %q", got)
	}
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after esc")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "→ ☐ buy milk") {
		t.Fatalf("expected selected task row; view=%q", view)
	}
	if !strings.Contains(view, "1 task left") {
		t.Fatalf("expected singular count; view=%q", view)
	}
}

func TestAddBlankShowsInlineError(t *testing.T) {
	m, s := newTestModel(t)
	m = press(t, m, runes("a"), runes("   "), enter)
	if len(s.Tasks()) != 0 {
		t.Fatalf("blank add created a task")
	}
	if m.mode != modeAdd {
		t.Fatalf("expected to stay in add mode")
	}
	if !m.statusErr || !strings.Contains(stripANSI(m.View()), "Please enter a task") {
		t.Fatalf("expected inline validation message; view=%q", stripANSI(m.View()))
	}
}

func TestToggleUnderActiveFilterTargetsVisibleTask(t *testing.T) {
	m, s := newTestModel(t, "A", "B", "C")
	m = press(t, m, runes("j"), space) // complete B
	m = press(t, m, runes("2"))        // active: A, C
	if m.cursor != 0 {
		t.Fatalf("filter change should reset cursor")
	}
	m = press(t, m, space)
	if got := states(s); got != "xA,xB, C" {
		t.Fatalf("expected A and B completed; got %q", got)
	}
	view := stripANSI(m.View())
	if strings.Contains(view, "☐ A") || !strings.Contains(view, "☐ C") {
		t.Fatalf("active view should only show C; view=%q", view)
	}
}

func TestEditUnderCompletedFilter(t *testing.T) {
	m, s := newTestModel(t, "A", "B", "C")
	m = press(t, m, space, runes("j"), runes("j"), space) // complete A and C
	m = press(t, m, runes("3"), runes("j"), runes("e"))
	if m.mode != modeEdit || m.input.Value() != "C" {
		t.Fatalf("expected edit of C, got mode=%d value=%q", m.mode, m.input.Value())
	}
	m = press(t, m, runes("!"), enter)
	if got := states(s); got != "xA, B,xC!" {
		t.Fatalf("unexpected tasks %q", got)
	}
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after edit")
	}
}

func TestEditBlankKeepsText(t *testing.T) {
	m, s := newTestModel(t, "A")
	m = press(t, m, runes("e"))
	m.input.SetValue("  ")
	m = press(t, m, enter)
	if got := states(s); got != " A" {
		t.Fatalf("blank edit changed the task: %q", got)
	}
	if !strings.Contains(stripANSI(m.View()), "Task cannot be empty") {
		t.Fatalf("expected inline validation message; view=%q", stripANSI(m.View()))
	}
}

func TestDeleteAndClearCompleted(t *testing.T) {
	m, s := newTestModel(t, "A", "B", "C", "D")
	m = press(t, m, runes("d"))                           // delete A
	m = press(t, m, space, runes("j"), runes("j"), space) // complete B and D
	if got := states(s); got != "xB, C,xD" {
		t.Fatalf("unexpected tasks %q", got)
	}
	m = press(t, m, runes("c"))
	if got := states(s); got != " C" {
		t.Fatalf("expected only C left, got %q", got)
	}
	if m.cursor != 0 {
		t.Fatalf("cursor should be clamped, got %d", m.cursor)
	}
}

func TestTabCyclesFilters(t *testing.T) {
	m, s := newTestModel(t, "A")
	tab := tea.KeyMsg{Type: tea.KeyTab}
	want := []task.Filter{task.Active, task.Completed, task.All}
	for _, f := range want {
		m = press(t, m, tab)
		if s.Filter() != f {
			t.Fatalf("expected %s, got %s", f, s.Filter())
		}
	}
}

type failingAdapter struct{}

func (failingAdapter) Load() (string, bool, error) { return "", false, nil }
func (failingAdapter) Save(string) error { return errors.New("disk full") }

func TestWriteFailureIsSurfaced(t *testing.T) {
	s := tasklist.New(failingAdapter{})
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	m := New(s)
	m = press(t, m, runes("a"), runes("A"), enter)
	if len(s.Tasks()) != 1 {
		t.Fatalf("in-memory add should survive a failed write")
	}
	if !m.statusErr || !strings.Contains(m.status, "changes may not be saved") {
		t.Fatalf("expected write warning, got %q", m.status)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
