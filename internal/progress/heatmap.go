package progress

import (
	"fmt"
	"time"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/models"
)

// Window selects the span of a heat map.
type Window string

const (
	WindowWeek  Window = "week"  // the last 7 days, ending today
	WindowMonth Window = "month" // 6 Monday-start weeks covering the current month
	WindowYear  Window = "year"  // one cell per month for the last 12 months
)

const monthGridDays = 42

func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowWeek, WindowMonth, WindowYear:
		return Window(s), nil
	}
	return "", fmt.Errorf("invalid heat map window %q (expected week, month or year)", s)
}

// Cell is one square of a heat map. For the year window Day is the first of the month,
// Level is empty and Intensity carries the month score.
type Cell struct {
	Day       time.Time
	Level     models.CompletionLevel
	Intensity float64
	InRange   bool
	IsToday   bool
	Future    bool
}

// HeatMap lays out completion data for the requested window relative to now.
func HeatMap(completions []models.DailyCompletion, window Window, now time.Time) ([]Cell, error) {
	today := calendar.StartOfDay(now)
	byDay := make(map[string]models.CompletionLevel, len(completions))
	for _, c := range completions {
		byDay[calendar.FormatDay(c.Date)] = c.CompletionLevel
	}

	dayCell := func(d time.Time, inRange bool) Cell {
		level, ok := byDay[calendar.FormatDay(d)]
		if !ok {
			level = models.CompletionNone
		}
		return Cell{
			Day:     d,
			Level:   level,
			InRange: inRange,
			IsToday: calendar.SameDay(d, today),
			Future:  calendar.DaysBetween(today, d) > 0,
		}
	}

	switch window {
	case WindowWeek:
		cells := make([]Cell, 0, 7)
		for i := 6; i >= 0; i-- {
			cells = append(cells, dayCell(calendar.AddDays(today, -i), true))
		}
		return cells, nil

	case WindowMonth:
		monthStart := calendar.MonthStart(today)
		gridStart := calendar.WeekStart(monthStart)
		cells := make([]Cell, 0, monthGridDays)
		for i := 0; i < monthGridDays; i++ {
			d := calendar.AddDays(gridStart, i)
			cells = append(cells, dayCell(d, d.Month() == monthStart.Month() && d.Year() == monthStart.Year()))
		}
		return cells, nil

	case WindowYear:
		first := calendar.MonthStart(today).AddDate(0, -11, 0)
		cells := make([]Cell, 0, 12)
		for i := 0; i < 12; i++ {
			m := first.AddDate(0, i, 0)
			cells = append(cells, Cell{
				Day:       m,
				Intensity: MonthIntensity(completions, m),
				InRange:   true,
				IsToday:   m.Year() == today.Year() && m.Month() == today.Month(),
			})
		}
		return cells, nil
	}

	return nil, fmt.Errorf("invalid heat map window %q", window)
}
