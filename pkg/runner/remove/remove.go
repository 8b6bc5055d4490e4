// Package remove provides the runner logic for deleting a task.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

// Remove deletes the task at Position in the view under Filter.
type Remove struct {
	Position int // zero-based
	Filter   task.Filter
	Store    *tasklist.Store

	Printer *printers.PrettyPrint
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no task store")
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
	err := n.Store.Dispatch(tasklist.Delete{Position: n.Position})

	if perr := pp.Show(n.Store); perr != nil {
		return perr
	}
	return err
}
