// Package priority validates CLI priority values and renders UI labels.
//
// The CLI flag value is sent to the API unchanged: 4 is the highest priority
// (shown as P1 in the Todoist UI) and 1 is the default (shown as P4).
package priority

import (
	"errors"
	"fmt"
)

const (
	// Default is the priority used when none is given.
	Default = 1

	// Highest is the highest API priority.
	Highest = 4
)

// ErrInvalidPriority indicates a priority outside 1-4.
var ErrInvalidPriority = errors.New("invalid priority")

var labels = map[int]string{
	4: "P1 (High)",
	3: "P2",
	2: "P3",
	1: "P4 (Normal)",
}

// Valid reports whether p is an accepted priority.
func Valid(p int) bool {
	return p >= Default && p <= Highest
}

// Parse parses a CLI priority value. Only the single digits "1" to "4" are
// accepted, so "+4", "04" and " 4" are rejected. The returned value is the
// API priority.
func Parse(s string) (int, error) {
	if len(s) == 1 {
		if p := int(s[0]) - '0'; Valid(p) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %s (must be 1-4)", ErrInvalidPriority, s)
}

// Label returns the UI label for an API priority.
func Label(p int) string {
	if l, ok := labels[p]; ok {
		return l
	}
	return "P4"
}
