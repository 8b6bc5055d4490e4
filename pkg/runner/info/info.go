package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tasklist"
)

// Info prints where the task list lives and what it holds.
type Info struct {
	Config store.Config
	Store  *tasklist.Store

	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TODO_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "TODO_CONFIG_PATH env var not set")
	}

	if n.Config != nil {
		_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
		_, _ = fmt.Fprintln(out, "Config.key: ", n.Config.Key())
	} else {
		_, _ = fmt.Fprintln(out, "Config: in-memory, nothing is saved")
	}

	if n.Store == nil {
		return errors.New("failed to create task store")
	}

	all := n.Store.Tasks()
	done := len(task.Completed.Apply(all))
	_, _ = fmt.Fprintf(out, "Tasks: %d total, %d completed, %s\n", len(all), done, n.Store.Summary())
	return nil
}
