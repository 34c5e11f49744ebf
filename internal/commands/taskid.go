package commands

import (
	"strings"
	"unicode"
)

// ParseTaskID parses the single task ID argument of complete, delete, get
// and update. IDs are opaque; only whitespace, control characters and path
// separators are rejected.
func ParseTaskID(args []string) (string, error) {
	if len(args) == 0 {
		return "", invalidArgs("task ID required")
	}
	if len(args) > 1 {
		return "", invalidArgs("unexpected argument: %s", args[1])
	}

	id := args[0]
	if id == "" {
		return "", invalidArgs("task ID required")
	}
	if strings.ContainsFunc(id, invalidIDRune) {
		return "", invalidArgs("invalid task ID: %q", id)
	}
	return id, nil
}

func invalidIDRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r) || r == '/' || r == '?' || r == '#'
}
