// Package errors renders command failures for the terminal, with a hint for the
// failures a user can fix.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/skilltrack/internal/keyring"
	"github.com/julianstephens/skilltrack/internal/logger"
	"github.com/julianstephens/skilltrack/internal/snapshot"
	"github.com/julianstephens/skilltrack/internal/tracker"
)

var hints = []struct {
	target error
	hint   string
}{
	{tracker.ErrSkillNotFound, "run 'skilltrack skill list --all' to see skill names and ids"},
	{tracker.ErrHabitNotFound, "run 'skilltrack routine list' to see the routine"},
	{tracker.ErrMomentNotFound, "run 'skilltrack moment list' to see moment ids"},
	{tracker.ErrInvalidWeight, "weights are in kilograms and must be a positive number"},
	{tracker.ErrCategoryExists, "run 'skilltrack category list' to see existing categories"},
	{keyring.ErrKeyringUnavailable, "set SKILLTRACK_DB_CONNECTION instead of using the keyring"},
}

// Hint suggests a next step for err, or returns "".
func Hint(err error) string {
	var formatErr *snapshot.FormatError
	if errors.As(err, &formatErr) {
		if formatErr.Op == "import" {
			return "the file is not a complete skilltrack export; create one with 'skilltrack export'"
		}
		return "stored data for " + formatErr.Key + " is unreadable; restore a backup with 'skilltrack backup restore'"
	}
	for _, h := range hints {
		if errors.Is(err, h.target) {
			return h.hint
		}
	}
	return ""
}

// Format renders err with the "Error: " prefix and, when known, a hint line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\nHint: " + hint
	}
	return msg
}

// Fatal logs err, prints it to stderr and exits 1. A nil err is ignored.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}
