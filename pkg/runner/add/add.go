// Package add provides the runner logic for adding a task.
package add

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/tasklist"
)

// Add appends a task and prints the updated view.
type Add struct {
	Text  string
	Store *tasklist.Store

	Printer *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no task store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	err := n.Store.Dispatch(tasklist.Add{Text: n.Text})
	if tasklist.IsValidation(err) {
		return errors.New("please enter a task")
	}

	if perr := pp.Show(n.Store); perr != nil {
		return perr
	}
	return err
}
