package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/constants"
)

// MorningHabit is one entry of the ordered morning routine.
type MorningHabit struct {
	ID    uuid.UUID
	Name  string
	Icon  string
	Color string
	Goal  string
	Order int
}

// IsTrackWeight reports whether the habit's completion is driven by the weight log.
func (h MorningHabit) IsTrackWeight() bool {
	return strings.EqualFold(strings.TrimSpace(h.Name), constants.TrackWeightHabitName)
}

// RoutineKey identifies one habit on one calendar day.
type RoutineKey struct {
	HabitID uuid.UUID
	Day     string // YYYY-MM-DD
}

func NewRoutineKey(habitID uuid.UUID, date time.Time) RoutineKey {
	return RoutineKey{HabitID: habitID, Day: calendar.FormatDay(date)}
}

// String renders the legacy habitId_yyyyMMdd form.
func (k RoutineKey) String() string {
	t, err := time.Parse(constants.DateFormat, k.Day)
	if err != nil {
		return k.HabitID.String() + "_" + k.Day
	}
	return k.HabitID.String() + "_" + t.Format(constants.RoutineKeyDateFormat)
}

// ParseRoutineKey parses the legacy habitId_yyyyMMdd form.
func ParseRoutineKey(s string) (RoutineKey, error) {
	idx := strings.LastIndex(s, "_")
	if idx < 0 {
		return RoutineKey{}, fmt.Errorf("invalid routine key %q", s)
	}
	id, err := uuid.Parse(s[:idx])
	if err != nil {
		return RoutineKey{}, fmt.Errorf("invalid habit id in routine key %q: %w", s, err)
	}
	day, err := time.Parse(constants.RoutineKeyDateFormat, s[idx+1:])
	if err != nil {
		return RoutineKey{}, fmt.Errorf("invalid day in routine key %q: %w", s, err)
	}
	return RoutineKey{HabitID: id, Day: day.Format(constants.DateFormat)}, nil
}

// DefaultMorningHabits is the starter routine written on first init.
func DefaultMorningHabits() []MorningHabit {
	return []MorningHabit{
		{ID: uuid.New(), Name: "Read 10 pages", Icon: "book.fill", Color: "purple", Goal: "10 pages", Order: 0},
		{ID: uuid.New(), Name: "Stretch", Icon: "figure.flexibility", Color: "blue", Goal: "5 minutes", Order: 1},
		{ID: uuid.New(), Name: "Track weight", Icon: "scalemass", Color: "indigo", Goal: "Weigh in", Order: 2},
		{ID: uuid.New(), Name: "Drink 500ml water", Icon: "drop.fill", Color: "cyan", Goal: "500ml", Order: 3},
	}
}
