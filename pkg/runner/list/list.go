// Package list provides the runner logic for printing the filtered view.
package list

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

// List prints the tasks visible under Filter.
type List struct {
	Filter task.Filter
	ShowID bool
	JSON   bool
	Store  *tasklist.Store

	// Out defaults to color.Output.
	Out io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list, no task store")
	}
	if err := n.Store.SetFilter(n.Filter); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, JSON: n.JSON, Out: n.Out}
	return pp.Show(n.Store)
}
