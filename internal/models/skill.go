package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/calendar"
)

type Frequency string

const (
	FrequencyDaily     Frequency = "Daily"
	FrequencyWeekly    Frequency = "Weekly"
	FrequencyMonthly   Frequency = "Monthly"
	FrequencyOpenEnded Frequency = "Open-ended"
)

// ParseFrequency accepts the stored names and their lowercase CLI spellings.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case string(FrequencyDaily), "daily":
		return FrequencyDaily, nil
	case string(FrequencyWeekly), "weekly":
		return FrequencyWeekly, nil
	case string(FrequencyMonthly), "monthly":
		return FrequencyMonthly, nil
	case string(FrequencyOpenEnded), "open-ended", "openEnded":
		return FrequencyOpenEnded, nil
	default:
		return "", fmt.Errorf("invalid frequency %q", s)
	}
}

type TimeFrameKind string

const (
	TimeFrameFixed     TimeFrameKind = "fixed"
	TimeFrameRecurring TimeFrameKind = "recurring"
	TimeFrameOpenEnded TimeFrameKind = "openEnded"
)

// TimeFrame is one of Fixed{Start,End}, Recurring{Frequency} or OpenEnded. Only the
// fields of the active Kind are meaningful.
type TimeFrame struct {
	Kind      TimeFrameKind
	Start     time.Time
	End       time.Time
	Frequency Frequency
}

func FixedTimeFrame(start, end time.Time) TimeFrame {
	return TimeFrame{Kind: TimeFrameFixed, Start: calendar.StartOfDay(start), End: calendar.StartOfDay(end)}
}

func RecurringTimeFrame(f Frequency) TimeFrame {
	return TimeFrame{Kind: TimeFrameRecurring, Frequency: f}
}

func OpenEndedTimeFrame() TimeFrame {
	return TimeFrame{Kind: TimeFrameOpenEnded}
}

func (tf TimeFrame) String() string {
	switch tf.Kind {
	case TimeFrameFixed:
		return fmt.Sprintf("%s - %s", calendar.FormatDay(tf.Start), calendar.FormatDay(tf.End))
	case TimeFrameRecurring:
		return string(tf.Frequency)
	default:
		return "No end date"
	}
}

type TrackingMetrics struct {
	DailyGoal  string
	WeeklyGoal string
}

// Skill is a trackable habit.
type Skill struct {
	ID              uuid.UUID
	Name            string
	Category        SkillCategory
	Frequency       Frequency
	TaskDescription string
	TimeFrame       TimeFrame
	TrackingMetrics TrackingMetrics
	StartDate       time.Time
	EndDate         *time.Time
	AllowsRollover  bool
}

// NewSkill returns a daily, open-ended skill starting on start's calendar day.
func NewSkill(name string, category SkillCategory, taskDescription string, start time.Time) Skill {
	return Skill{
		ID:              uuid.New(),
		Name:            name,
		Category:        category,
		Frequency:       FrequencyDaily,
		TaskDescription: taskDescription,
		TimeFrame:       OpenEndedTimeFrame(),
		StartDate:       calendar.StartOfDay(start),
	}
}

// IsActive reports whether the skill is scheduled on date's calendar day.
// Bounds are inclusive and compared by calendar day.
func (s Skill) IsActive(date time.Time) bool {
	onOrAfter := func(bound time.Time) bool { return calendar.DaysBetween(bound, date) >= 0 }
	onOrBefore := func(bound time.Time) bool { return calendar.DaysBetween(date, bound) >= 0 }

	switch s.TimeFrame.Kind {
	case TimeFrameFixed:
		return onOrAfter(s.TimeFrame.Start) && onOrBefore(s.TimeFrame.End)
	case TimeFrameRecurring:
		if !onOrAfter(s.StartDate) {
			return false
		}
		return s.EndDate == nil || onOrBefore(*s.EndDate)
	default:
		return s.EndDate == nil || onOrBefore(*s.EndDate)
	}
}

// IsArchived is the negation of IsActive for now.
func (s Skill) IsArchived(now time.Time) bool {
	return !s.IsActive(now)
}

// Validate checks the fields a user can get wrong when creating or editing a skill.
func (s Skill) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("skill name cannot be empty")
	}
	switch s.TimeFrame.Kind {
	case TimeFrameFixed:
		if s.TimeFrame.End.Before(s.TimeFrame.Start) {
			return fmt.Errorf("fixed time frame ends (%s) before it starts (%s)",
				calendar.FormatDay(s.TimeFrame.End), calendar.FormatDay(s.TimeFrame.Start))
		}
	case TimeFrameRecurring, TimeFrameOpenEnded:
	default:
		return fmt.Errorf("unknown time frame %q", s.TimeFrame.Kind)
	}
	if s.EndDate != nil && calendar.DaysBetween(s.StartDate, *s.EndDate) < 0 {
		return fmt.Errorf("end date is before start date")
	}
	return nil
}

// DefaultSkills is the starter set written on first init.
func DefaultSkills(start time.Time) []Skill {
	return []Skill{
		NewSkill("Coding", CategoryLearning, "Practice coding for 30 minutes", start),
		NewSkill("Reading", CategoryPersonalDevelopment, "Read a chapter of a book", start),
		NewSkill("Workout", CategoryFitness, "Do a 20-minute workout", start),
		NewSkill("Guitar Practice", CategoryCreativeSkills, "Practice guitar chords", start),
		NewSkill("Language Learning", CategoryLearning, "Learn 10 new words", start),
	}
}
