// Package progress derives streaks, percentages and heat-map cells from a skill's
// completion history. Everything here is a pure function of its inputs.
package progress

import (
	"sort"
	"time"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/models"
)

// Stats is the derived summary of one skill's history.
type Stats struct {
	CurrentStreak        int
	LongestStreak        int
	CompletionPercentage float64
}

// Compute derives all three statistics relative to today.
func Compute(completions []models.DailyCompletion, today time.Time) Stats {
	return Stats{
		CurrentStreak:        CurrentStreak(completions, today),
		LongestStreak:        LongestStreak(completions),
		CompletionPercentage: CompletionPercentage(completions),
	}
}

// ForSkill builds the SkillProgress view for a skill from its own completions.
func ForSkill(skill models.Skill, completions []models.DailyCompletion, today time.Time) models.SkillProgress {
	stats := Compute(completions, today)
	return models.SkillProgress{
		SkillID:              skill.ID,
		SkillName:            skill.Name,
		Completions:          completions,
		CurrentStreak:        stats.CurrentStreak,
		LongestStreak:        stats.LongestStreak,
		CompletionPercentage: stats.CompletionPercentage,
	}
}

// CurrentStreak counts consecutive full days ending today. A day without a record ends
// the streak exactly like a day that is not full. Records dated after today are ignored.
func CurrentStreak(completions []models.DailyCompletion, today time.Time) int {
	sorted := sortedByDate(completions, true)
	expected := calendar.StartOfDay(today)
	streak := 0

	for _, c := range sorted {
		gap := calendar.DaysBetween(c.Date, expected)
		switch {
		case gap < 0:
			continue
		case gap > 0:
			return streak
		}
		if c.CompletionLevel != models.CompletionFull {
			return streak
		}
		streak++
		expected = calendar.AddDays(expected, -1)
	}
	return streak
}

// LongestStreak returns the longest run of consecutive full days anywhere in the history.
func LongestStreak(completions []models.DailyCompletion) int {
	switch len(completions) {
	case 0:
		return 0
	case 1:
		if completions[0].CompletionLevel == models.CompletionFull {
			return 1
		}
		return 0
	}

	sorted := sortedByDate(completions, false)
	longest, run := 0, 0
	var prev time.Time

	for i, c := range sorted {
		if c.CompletionLevel != models.CompletionFull {
			run = 0
		} else if i > 0 && calendar.DaysBetween(prev, c.Date) > 1 {
			run = 1
		} else {
			run++
		}
		if run > longest {
			longest = run
		}
		prev = c.Date
	}
	return longest
}

// CompletionPercentage is full records over all records, times 100. Partial records
// count against the percentage. Zero records yield 0.
func CompletionPercentage(completions []models.DailyCompletion) float64 {
	if len(completions) == 0 {
		return 0
	}
	full := 0
	for _, c := range completions {
		if c.CompletionLevel == models.CompletionFull {
			full++
		}
	}
	return float64(full) / float64(len(completions)) * 100
}

// MonthIntensity weighs each day of month's calendar month: full counts 1, partial 0.5,
// divided by the number of days in the month.
func MonthIntensity(completions []models.DailyCompletion, month time.Time) float64 {
	start := calendar.MonthStart(month)
	days := calendar.DaysInMonth(month)
	score := 0.0

	for _, c := range completions {
		offset := calendar.DaysBetween(start, c.Date)
		if offset < 0 || offset >= days {
			continue
		}
		switch c.CompletionLevel {
		case models.CompletionFull:
			score++
		case models.CompletionPartial:
			score += 0.5
		}
	}
	return score / float64(days) * 100
}

func sortedByDate(completions []models.DailyCompletion, descending bool) []models.DailyCompletion {
	sorted := make([]models.DailyCompletion, len(completions))
	copy(sorted, completions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
