// Package edit provides the runner logic for rewording a task.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

// Edit replaces the text of the task at Position in the view under Filter.
type Edit struct {
	Position int // zero-based
	Text     string
	Filter   task.Filter
	Store    *tasklist.Store

	Printer *printers.PrettyPrint
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no task store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	if err := n.Store.SetFilter(n.Filter); err != nil {
		return err
	}
	if _, ok := n.Store.Lookup(n.Position); !ok {
		return fmt.Errorf("no task %d in %s view", n.Position+1, n.Store.Filter())
	}
	err := n.Store.Dispatch(tasklist.Edit{Position: n.Position, Text: n.Text})
	if tasklist.IsValidation(err) {
		return errors.New("task cannot be empty")
	}

	if perr := pp.Show(n.Store); perr != nil {
		return perr
	}
	return err
}
