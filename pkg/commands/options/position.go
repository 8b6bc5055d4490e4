package options

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePosition turns the 1-based number printed by `todo list` into a
// zero-based view position.
func ParsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid task number %q", arg)
	}
	if n < 1 {
		return 0, fmt.Errorf("task numbers start at 1, got %d", n)
	}
	return n - 1, nil
}
