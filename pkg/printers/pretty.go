package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/task"
)

const (
	checked   = "☑"
	unchecked = "☐"
)

// PrettyPrint renders filtered task views for the terminal.
type PrettyPrint struct {
	ShowID bool
	// JSON makes Show emit a Listing instead of a table.
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Title prints the filter heading.
func (pp *PrettyPrint) Title(f task.Filter) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title(f))
}

// Tasks prints the view numbered from 1; those numbers are the positions the
// CLI accepts.
func (pp *PrettyPrint) Tasks(view []task.DisplayRecord) {
	if len(view) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " No tasks found\n")
		return
	}

	num := color.New(color.Faint)
	done := color.New(color.Faint, color.CrossedOut)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, r := range view {
		box, text := unchecked, r.Text
		if r.Completed {
			box, text = checked, done.Sprint(r.Text)
		}
		row := []interface{}{num.Sprint(strconv.Itoa(i + 1)), box, text}
		if pp.ShowID {
			row = append(row, id.Sprint(r.ID))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Summary prints the "N tasks left" footer.
func (pp *PrettyPrint) Summary(label string) {
	c := color.New(color.Faint)
	_, _ = c.Fprintln(pp.out(), label)
}

func title(f task.Filter) string {
	switch f {
	case task.Active:
		return "Active tasks"
	case task.Completed:
		return "Completed tasks"
	default:
		return "All tasks"
	}
}

// View prints a heading, the numbered view, and the summary line.
func (pp *PrettyPrint) View(f task.Filter, view []task.DisplayRecord, summary string) {
	pp.NewLine()
	pp.Title(f)
	pp.Tasks(view)
	pp.Summary(summary)
}
