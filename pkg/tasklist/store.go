// Package tasklist owns the canonical task list and the active filter. Every
// mutation goes through a Store, which persists the whole list before telling
// listeners to re-render.
//
// Views only ever show the filtered subsequence, so mutations arrive as a
// position within that subsequence. The Store re-derives the filtered view,
// reads the task id at that position, and mutates the task with that id in
// the canonical list. Indexing the canonical list by a filtered position
// would touch the wrong task whenever the filter is not "all".
package tasklist

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

// StateFunc receives the filtered view and the active count after each change.
type StateFunc func(view []task.DisplayRecord, active int)

// Store is not safe for concurrent use; one goroutine owns it.
type Store struct {
	adapter store.Adapter

	tasks  []task.Task
	filter task.Filter

	listeners []StateFunc

	now    func() time.Time
	newID  func() task.ID
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the creation time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets how new task ids are made.
func WithIDGenerator(gen func() task.ID) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger sets the logger; output is discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithFilter sets the initial filter. Unknown filters are ignored.
func WithFilter(f task.Filter) Option {
	return func(s *Store) {
		if f.Valid() {
			s.filter = f
		}
	}
}

// New returns an empty store with the "all" filter. Call Initialize to
// hydrate it from the adapter.
func New(adapter store.Adapter, opts ...Option) *Store {
	s := &Store{
		adapter: adapter,
		filter:  task.All,
		now:     time.Now,
		newID:   task.NewID,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("component", "tasklist"))
	return s
}

// Initialize loads the persisted list. A missing blob yields an empty list.
// A blob that does not parse yields a *CorruptPersistedStateError and leaves
// the list empty.
func (s *Store) Initialize() error {
	if s.adapter == nil {
		return errors.New("tasklist: no persistence configured")
	}
	blob, ok, err := s.adapter.Load()
	if err != nil {
		return fmt.Errorf("tasklist: load: %w", err)
	}
	s.tasks = nil
	if !ok {
		s.logger.Debug("no persisted task list, starting empty")
		return nil
	}
	tasks, err := task.UnmarshalList(blob)
	if err != nil {
		s.logger.Error("persisted task list is corrupt", slog.Any("error", err))
		return &CorruptPersistedStateError{Err: err}
	}
	s.tasks = tasks
	s.logger.Debug("task list loaded", slog.Int("tasks", len(tasks)))
	return nil
}

// OnStateChanged registers fn to run after every mutation and filter change.
func (s *Store) OnStateChanged(fn StateFunc) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Filter returns the active filter.
func (s *Store) Filter() task.Filter {
	return s.filter
}

// SetFilter changes the active filter and always notifies listeners. A filter
// outside task.Filters is rejected and nothing changes.
func (s *Store) SetFilter(f task.Filter) error {
	if !f.Valid() {
		return fmt.Errorf("tasklist: unknown filter %q", f)
	}
	if f != s.filter {
		s.filter = f
		s.logger.Debug("filter changed", slog.String("filter", f.String()))
	}
	s.notify()
	return nil
}

// Tasks returns a copy of the canonical list.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// FilteredTasks returns the tasks visible under the active filter.
func (s *Store) FilteredTasks() []task.Task {
	return s.filter.Apply(s.tasks)
}

// View projects the filtered tasks to display records.
func (s *Store) View() []task.DisplayRecord {
	return task.Displays(s.FilteredTasks())
}

// CountActive counts tasks that are not completed.
func (s *Store) CountActive() int {
	n := 0
	for _, t := range s.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Summary is the "N tasks left" label for the current list.
func (s *Store) Summary() string {
	return ActiveLabel(s.CountActive())
}

// AddTask appends a new open task.
func (s *Store) AddTask(text string) (task.Task, error) {
	text = task.CleanText(text)
	if text == "" {
		return task.Task{}, ErrEmptyTask
	}
	t := task.New(s.newID(), text, s.now())
	s.tasks = append(s.tasks, t)
	s.logger.Debug("task added", slog.String("id", t.ID.String()))
	return t, s.commit()
}

// ToggleComplete flips the completed flag of the task at pos in the filtered
// view. An unresolvable position is ignored.
func (s *Store) ToggleComplete(pos int) error {
	i, ok := s.resolve(pos)
	if !ok {
		s.logger.Debug("toggle ignored, stale position", slog.Int("position", pos))
		return nil
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.logger.Debug("task toggled", slog.String("id", s.tasks[i].ID.String()), slog.Bool("completed", s.tasks[i].Completed))
	return s.commit()
}

// EditTask replaces the text of the task at pos in the filtered view.
func (s *Store) EditTask(pos int, text string) error {
	i, ok := s.resolve(pos)
	if !ok {
		s.logger.Debug("edit ignored, stale position", slog.Int("position", pos))
		return nil
	}
	text = task.CleanText(text)
	if text == "" {
		return ErrEmptyTask
	}
	s.tasks[i].Text = text
	s.logger.Debug("task edited", slog.String("id", s.tasks[i].ID.String()))
	return s.commit()
}

// DeleteTask removes the task at pos in the filtered view.
func (s *Store) DeleteTask(pos int) error {
	i, ok := s.resolve(pos)
	if !ok {
		s.logger.Debug("delete ignored, stale position", slog.Int("position", pos))
		return nil
	}
	id := s.tasks[i].ID
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.logger.Debug("task deleted", slog.String("id", id.String()))
	return s.commit()
}

// ClearCompleted removes every completed task and saves once.
func (s *Store) ClearCompleted() error {
	kept := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	s.logger.Debug("completed tasks cleared", slog.Int("removed", len(s.tasks)-len(kept)))
	s.tasks = kept
	return s.commit()
}

// Lookup returns the task shown at pos in the filtered view.
func (s *Store) Lookup(pos int) (task.Task, bool) {
	i, ok := s.resolve(pos)
	if !ok {
		return task.Task{}, false
	}
	return s.tasks[i], true
}

// resolve maps a filtered-view position to a canonical index via the task id.
func (s *Store) resolve(pos int) (int, bool) {
	view := s.FilteredTasks()
	if pos < 0 || pos >= len(view) {
		return -1, false
	}
	return s.indexOf(view[pos].ID)
}

func (s *Store) indexOf(id task.ID) (int, bool) {
	for i, t := range s.tasks {
		if t.ID == id {
			return i, true
		}
	}
	return -1, false
}

// commit persists the list then notifies listeners. A failed write keeps the
// in-memory change.
func (s *Store) commit() error {
	err := s.persist()
	s.notify()
	return err
}

func (s *Store) persist() error {
	if s.adapter == nil {
		return &PersistenceWriteError{Err: errors.New("no persistence configured")}
	}
	blob, err := task.MarshalList(s.tasks)
	if err != nil {
		return &PersistenceWriteError{Err: err}
	}
	if err := s.adapter.Save(blob); err != nil {
		s.logger.Warn("saving task list failed", slog.Any("error", err))
		return &PersistenceWriteError{Err: err}
	}
	return nil
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	view := s.View()
	active := s.CountActive()
	for _, fn := range s.listeners {
		fn(view, active)
	}
}
