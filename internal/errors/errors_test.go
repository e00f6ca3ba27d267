package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/snapshot"
	"github.com/julianstephens/skilltrack/internal/tracker"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "plain error", err: errors.New("disk full"), expected: "Error: disk full"},
		{
			name:     "wrapped sentinel gets a hint",
			err:      fmt.Errorf("%w: %q", tracker.ErrSkillNotFound, "Juggling"),
			expected: "Error: skill not found: \"Juggling\"\nHint: run 'skilltrack skill list --all' to see skill names and ids",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"import", &snapshot.FormatError{Op: "import", Err: errors.New("missing section")}, "complete skilltrack export"},
		{"stored key", fmt.Errorf("load: %w", &snapshot.FormatError{Op: "decode", Key: constants.KeySkills, Err: errors.New("bad")}), constants.KeySkills},
		{"derived habit has none", tracker.ErrDerivedHabit, ""},
		{"weight", tracker.ErrInvalidWeight, "kilograms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hint(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("Hint() = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Hint() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestFatal(t *testing.T) {
	if os.Getenv("SKILLTRACK_TEST_FATAL") == "1" {
		Fatal(tracker.ErrHabitNotFound)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal$")
	cmd.Env = append(os.Environ(), "SKILLTRACK_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Fatal() did not exit with error: %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("Fatal() exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Hint: run 'skilltrack routine list'") {
		t.Errorf("Fatal() stderr = %q, want a routine hint", stderr.String())
	}
}
