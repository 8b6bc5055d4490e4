// Package teaui is the terminal projection of the task store: it renders the
// filtered view and turns key presses into store intents.
package teaui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeEdit
)

const helpLine = "j/k move · a add · e edit · space toggle · d delete · c clear completed · 1/2/3 filter · q quit"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTab     = tabStyle.Bold(true).Underline(true).Foreground(lipgloss.Color("218"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	emptyMessage  = "No tasks found"
	defaultStatus = "Press a to add a task, q to quit"
)

var tabLabels = map[task.Filter]string{
	task.All:       "All",
	task.Active:    "Active",
	task.Completed: "Completed",
}

// projection is what the store last reported through OnStateChanged. Model
// copies share it.
type projection struct {
	view   []task.DisplayRecord
	active int
}

// Model contains UI state.
type Model struct {
	store *tasklist.Store
	proj  *projection

	mode    mode
	cursor  int
	editPos int
	input   textinput.Model

	status    string
	statusErr bool

	termWidth  int
	termHeight int
}

// New builds the model and subscribes it to store changes. Only one model
// should be attached to a store.
func New(store *tasklist.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256
	ti.Prompt = ""

	proj := &projection{}
	if store != nil {
		store.OnStateChanged(func(view []task.DisplayRecord, active int) {
			proj.view = view
			proj.active = active
		})
		proj.view = store.View()
		proj.active = store.CountActive()
	}

	return Model{
		store:  store,
		proj:   proj,
		mode:   modeNormal,
		input:  ti,
		status: defaultStatus,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.input.Width = max(msg.Width-10, 10)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.proj.view)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(len(m.proj.view)-1, 0)
	case " ", "x":
		m.dispatch(tasklist.Toggle{Position: m.cursor}, "Toggled")
	case "d", "delete":
		m.dispatch(tasklist.Delete{Position: m.cursor}, "Deleted")
	case "c":
		m.dispatch(tasklist.ClearCompleted{}, "Cleared completed tasks")
	case "1":
		m.setFilter(task.All)
	case "2":
		m.setFilter(task.Active)
	case "3":
		m.setFilter(task.Completed)
	case "tab":
		m.setFilter(m.nextFilter(1))
	case "shift+tab":
		m.setFilter(m.nextFilter(-1))
	case "a", "o":
		m.mode = modeAdd
		m.input.Reset()
		m.input.Placeholder = "What needs to be done?"
		m.setStatus("Add: enter to save, esc to cancel", false)
		return m, m.input.Focus()
	case "e", "enter":
		if m.store == nil {
			return m, nil
		}
		t, ok := m.store.Lookup(m.cursor)
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.editPos = m.cursor
		m.input.SetValue(t.Text)
		m.input.CursorEnd()
		m.setStatus("Edit: enter to save, esc to cancel", false)
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var err error
		switch m.mode {
		case modeAdd:
			err = m.dispatch(tasklist.Add{Text: m.input.Value()}, "Added")
		case modeEdit:
			err = m.dispatch(tasklist.Edit{Position: m.editPos, Text: m.input.Value()}, "Edited")
		}
		if tasklist.IsValidation(err) {
			// Stay in the input so the user can fix it.
			return m, nil
		}
		if m.mode == modeAdd {
			// Keep adding; the cursor follows the new task when it is visible.
			m.input.Reset()
			m.cursor = max(len(m.proj.view)-1, 0)
			return m, nil
		}
		m.leaveInput()
		return m, nil
	case "esc":
		if m.mode == modeAdd {
			m.setStatus("Add cancelled", false)
		} else {
			m.setStatus("Edit cancelled", false)
		}
		m.leaveInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveInput() {
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
}

// dispatch sends an intent to the store and turns the result into a status line.
func (m *Model) dispatch(in tasklist.Intent, done string) error {
	if m.store == nil {
		return nil
	}
	err := m.store.Dispatch(in)
	var werr *tasklist.PersistenceWriteError
	switch {
	case err == nil:
		m.setStatus(done, false)
	case errors.Is(err, tasklist.ErrEmptyTask):
		if m.mode == modeEdit {
			m.setStatus("Task cannot be empty", true)
		} else {
			m.setStatus("Please enter a task", true)
		}
	case errors.As(err, &werr):
		m.setStatus(fmt.Sprintf("%s, but changes may not be saved: %v", done, werr.Err), true)
	default:
		m.setStatus(err.Error(), true)
	}
	m.clampCursor()
	return err
}

func (m *Model) setFilter(f task.Filter) {
	if m.store == nil {
		return
	}
	_ = m.dispatch(tasklist.SetFilter{Filter: f}, "Showing "+f.String()+" tasks")
	m.cursor = 0
}

func (m Model) nextFilter(step int) task.Filter {
	filters := task.Filters()
	current := 0
	if m.store != nil {
		for i, f := range filters {
			if f == m.store.Filter() {
				current = i
			}
		}
	}
	return filters[(current+step+len(filters))%len(filters)]
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.proj.view) {
		m.cursor = len(m.proj.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// View renders the filtered view.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("todo"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if len(m.proj.view) == 0 {
		b.WriteString(faintStyle.Render("  " + emptyMessage))
		b.WriteString("\n")
	}
	for i, r := range m.proj.view {
		b.WriteString(m.renderRow(i, r))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("Add: " + m.input.View() + "\n")
	case modeEdit:
		b.WriteString("Edit: " + m.input.View() + "\n")
	}

	b.WriteString(faintStyle.Render(tasklist.ActiveLabel(m.proj.active)))
	b.WriteString("\n")
	if m.statusErr {
		b.WriteString(errorStyle.Render(m.status))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(m.fit(helpLine, 0)))
	return b.String()
}

func (m Model) renderTabs() string {
	current := task.All
	if m.store != nil {
		current = m.store.Filter()
	}
	tabs := make([]string, 0, 3)
	for i, f := range task.Filters() {
		label := fmt.Sprintf("%d %s", i+1, tabLabels[f])
		if f == current {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderRow(i int, r task.DisplayRecord) string {
	marker := "  "
	if i == m.cursor && m.mode == modeNormal {
		marker = cursorStyle.Render("→ ")
	}
	box := "☐ "
	text := m.fit(r.Text, 6)
	if r.Completed {
		box = "☑ "
		text = doneStyle.Render(text)
	}
	return marker + box + text
}

// fit truncates s to the terminal width minus reserved columns.
func (m Model) fit(s string, reserved int) string {
	if m.termWidth <= reserved {
		return s
	}
	return truncate.StringWithTail(s, uint(m.termWidth-reserved), "…")
}
