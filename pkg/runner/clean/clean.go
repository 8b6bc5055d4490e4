// Package clean provides the runner logic for dropping completed tasks.
package clean

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/tasklist"
)

// Clean removes every completed task.
type Clean struct {
	Store *tasklist.Store

	Printer *printers.PrettyPrint
}

func (n *Clean) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear, no task store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	err := n.Store.Dispatch(tasklist.ClearCompleted{})

	if perr := pp.Show(n.Store); perr != nil {
		return perr
	}
	return err
}
