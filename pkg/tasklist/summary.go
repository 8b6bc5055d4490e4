package tasklist

import "fmt"

// ActiveLabel renders an active count, singular only for exactly one.
func ActiveLabel(n int) string {
	switch n {
	case 1:
		return "1 task left"
	default:
		return fmt.Sprintf("%d tasks left", n)
	}
}
