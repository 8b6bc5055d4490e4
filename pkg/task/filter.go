package task

import (
	"fmt"
	"strings"
)

// Filter selects which tasks a view shows.
type Filter string

const (
	All       Filter = "all"
	Active    Filter = "active"
	Completed Filter = "completed"
)

// Filters lists every filter in display order.
func Filters() []Filter {
	return []Filter{All, Active, Completed}
}

// Valid reports whether f is one of Filters.
func (f Filter) Valid() bool {
	switch f {
	case All, Active, Completed:
		return true
	}
	return false
}

// ParseFilter accepts a filter name in any case.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case All, Active, Completed:
		return f, nil
	case "":
		return All, nil
	default:
		return "", fmt.Errorf("task: unknown filter %q (expected all, active or completed)", s)
	}
}

// Match reports whether t belongs in a view under f.
func (f Filter) Match(t Task) bool {
	switch f {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the subsequence of tasks matching f, order preserved.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) String() string {
	return string(f)
}
