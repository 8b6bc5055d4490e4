// Package ui provides the runner logic for the interactive task list.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/tasklist"

	teaui "tableflip.dev/todo/pkg/runner/tea"
)

// UI runs the terminal UI over an initialized store.
type UI struct {
	Store *tasklist.Store
}

func (d *UI) Do(ctx context.Context) error {
	if d.Store == nil {
		return errors.New("can not open ui, no task store")
	}
	return teaui.Run(ctx, d.Store)
}
