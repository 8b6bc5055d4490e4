package tasklist

import (
	"fmt"

	"tableflip.dev/todo/pkg/task"
)

// Intent is a user action emitted by a view. Positions index the filtered
// view the user was looking at.
type Intent interface {
	intent()
}

// Add appends a task with Text.
type Add struct{ Text string }

// Toggle flips the completed flag of the task at Position.
type Toggle struct{ Position int }

// Edit rewords the task at Position.
type Edit struct {
	Position int
	Text     string
}

// Delete removes the task at Position.
type Delete struct{ Position int }

// SetFilter switches the view; unknown filters are an error.
type SetFilter struct{ Filter task.Filter }

// ClearCompleted removes every completed task.
type ClearCompleted struct{}

func (Add) intent()            {}
func (Toggle) intent()         {}
func (Edit) intent()           {}
func (Delete) intent()         {}
func (SetFilter) intent()      {}
func (ClearCompleted) intent() {}

// Dispatch applies an intent.
func (s *Store) Dispatch(in Intent) error {
	switch in := in.(type) {
	case Add:
		_, err := s.AddTask(in.Text)
		return err
	case Toggle:
		return s.ToggleComplete(in.Position)
	case Edit:
		return s.EditTask(in.Position, in.Text)
	case Delete:
		return s.DeleteTask(in.Position)
	case SetFilter:
		return s.SetFilter(in.Filter)
	case ClearCompleted:
		return s.ClearCompleted()
	default:
		return fmt.Errorf("tasklist: unknown intent %T", in)
	}
}
