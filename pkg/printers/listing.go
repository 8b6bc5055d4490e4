package printers

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/todo/pkg/task"
)

// Listing is the --json shape of a filtered view.
type Listing struct {
	Filter task.Filter          `json:"filter"`
	Tasks  []task.DisplayRecord `json:"tasks"`
	Active int                  `json:"active"`
}

// Viewer is the read side of a task store.
type Viewer interface {
	Filter() task.Filter
	View() []task.DisplayRecord
	CountActive() int
	Summary() string
}

// Show prints the current view of v, as a single JSON line when pp.JSON is set.
func (pp *PrettyPrint) Show(v Viewer) error {
	if !pp.JSON {
		pp.View(v.Filter(), v.View(), v.Summary())
		return nil
	}
	b, err := json.Marshal(Listing{
		Filter: v.Filter(),
		Tasks:  v.View(),
		Active: v.CountActive(),
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(pp.out(), string(b))
	return nil
}
