// Package key provides CLI helpers to display the UI key bindings.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Binding is one key of the task UI.
type Binding struct {
	Keys    string
	Meaning string
}

// Bindings lists the UI keys in help order.
func Bindings() []Binding {
	return []Binding{
		{Keys: "j/k ↓/↑", Meaning: "move selection"},
		{Keys: "a o", Meaning: "add a task"},
		{Keys: "e", Meaning: "edit the selected task"},
		{Keys: "space x", Meaning: "toggle completed"},
		{Keys: "d", Meaning: "delete the selected task"},
		{Keys: "c", Meaning: "clear completed tasks"},
		{Keys: "1 2 3 tab", Meaning: "show all, active, completed"},
		{Keys: "enter", Meaning: "save input"},
		{Keys: "esc", Meaning: "cancel input"},
		{Keys: "q ctrl+c", Meaning: "quit"},
	}
}

// Key prints the binding legend.
type Key struct {
	Out io.Writer
}

// Do renders the key table.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Keys"), bold.Sprint("Meaning"))
	for _, b := range Bindings() {
		tbl.AddRow(b.Keys, b.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
