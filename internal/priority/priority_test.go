package priority_test

import (
	"errors"
	"testing"

	"todoist/internal/priority"
)

func TestParse_AcceptsOneToFour(t *testing.T) {
	tests := []struct {
		in    string
		api   int
		label string
	}{
		{"4", 4, "P1 (High)"},
		{"3", 3, "P2"},
		{"2", 2, "P3"},
		{"1", 1, "P4 (Normal)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := priority.Parse(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.api {
				t.Errorf("expected API value %d, got %d", tt.api, got)
			}
			if label := priority.Label(got); label != tt.label {
				t.Errorf("expected label %q, got %q", tt.label, label)
			}
		})
	}
}

func TestParse_RejectsOthers(t *testing.T) {
	for _, in := range []string{"0", "5", "-1", "10", "", "high", "2.5", "P1", "+4", "04", "0003", " 4 ", "4\n", "٤"} {
		t.Run(in, func(t *testing.T) {
			_, err := priority.Parse(in)
			if !errors.Is(err, priority.ErrInvalidPriority) {
				t.Errorf("expected ErrInvalidPriority for %q, got %v", in, err)
			}
		})
	}
}

func TestLabel_Unknown(t *testing.T) {
	if got := priority.Label(0); got != "P4" {
		t.Errorf("expected P4 for unknown priority, got %q", got)
	}
}

func TestValid(t *testing.T) {
	if priority.Valid(0) || priority.Valid(5) {
		t.Error("expected 0 and 5 to be invalid")
	}
	if !priority.Valid(priority.Default) || !priority.Valid(priority.Highest) {
		t.Error("expected bounds to be valid")
	}
}
