package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/calendar"
)

// CompletionLevel grades how much of a task was done on a day.
// Ordered None < Partial < Full.
type CompletionLevel string

const (
	CompletionNone    CompletionLevel = "none"
	CompletionPartial CompletionLevel = "partial"
	CompletionFull    CompletionLevel = "full"
)

// ParseCompletionLevel parses a level name. The empty string is treated as none.
func ParseCompletionLevel(s string) (CompletionLevel, error) {
	switch CompletionLevel(s) {
	case CompletionNone, "":
		return CompletionNone, nil
	case CompletionPartial:
		return CompletionPartial, nil
	case CompletionFull:
		return CompletionFull, nil
	default:
		return "", fmt.Errorf("invalid completion level %q (expected none, partial or full)", s)
	}
}

func (l CompletionLevel) Valid() bool {
	return l == CompletionNone || l == CompletionPartial || l == CompletionFull
}

// Rank returns 0, 1 or 2 for none, partial and full.
func (l CompletionLevel) Rank() int {
	switch l {
	case CompletionPartial:
		return 1
	case CompletionFull:
		return 2
	default:
		return 0
	}
}

func (l CompletionLevel) IsFull() bool {
	return l == CompletionFull
}

// Next is the three-way cycle: none -> partial -> full -> none. The empty level counts
// as none.
func (l CompletionLevel) Next() CompletionLevel {
	switch l {
	case CompletionNone, "":
		return CompletionPartial
	case CompletionPartial:
		return CompletionFull
	default:
		return CompletionNone
	}
}

// Toggle is the two-way switch: full -> none, anything else -> full.
func (l CompletionLevel) Toggle() CompletionLevel {
	if l == CompletionFull {
		return CompletionNone
	}
	return CompletionFull
}

// DailyCompletion is the record of one skill on one calendar day. At most one exists per
// (SkillID, Date).
type DailyCompletion struct {
	ID              uuid.UUID
	SkillID         uuid.UUID
	Date            time.Time // local midnight
	IsCompleted     bool      // mirrors CompletionLevel == full
	CompletionLevel CompletionLevel
}

// NewDailyCompletion builds a record with its date normalised and IsCompleted derived.
func NewDailyCompletion(skillID uuid.UUID, date time.Time, level CompletionLevel) DailyCompletion {
	return DailyCompletion{
		ID:              uuid.New(),
		SkillID:         skillID,
		Date:            calendar.StartOfDay(date),
		IsCompleted:     level == CompletionFull,
		CompletionLevel: level,
	}
}

// SetLevel updates the level in place and keeps IsCompleted in sync.
func (c *DailyCompletion) SetLevel(level CompletionLevel) {
	c.CompletionLevel = level
	c.IsCompleted = level == CompletionFull
}

// SkillProgress is derived on every query and never stored.
type SkillProgress struct {
	SkillID              uuid.UUID
	SkillName            string
	Completions          []DailyCompletion
	CurrentStreak        int
	LongestStreak        int
	CompletionPercentage float64
}
