package progress

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/models"
)

var today = time.Date(2026, 10, 18, 14, 0, 0, 0, time.UTC)

// history builds one record per level, the last one dated `end` and each earlier one a
// day before. An empty level leaves that day without a record.
func history(end time.Time, levels ...models.CompletionLevel) []models.DailyCompletion {
	skillID := uuid.New()
	var out []models.DailyCompletion
	for i, level := range levels {
		if level == "" {
			continue
		}
		d := calendar.AddDays(end, i-(len(levels)-1))
		out = append(out, models.NewDailyCompletion(skillID, d, level))
	}
	return out
}

const (
	F = models.CompletionFull
	P = models.CompletionPartial
	N = models.CompletionNone
	X = models.CompletionLevel("") // missing day
)

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name   string
		levels []models.CompletionLevel
		end    time.Time
		want   int
	}{
		{name: "empty", levels: nil, end: today, want: 0},
		{name: "three full days ending today", levels: []models.CompletionLevel{F, F, F}, end: today, want: 3},
		{name: "none two days ago breaks it", levels: []models.CompletionLevel{F, N, F, F}, end: today, want: 2},
		{name: "missing day two days ago breaks it", levels: []models.CompletionLevel{F, X, F, F}, end: today, want: 2},
		{name: "today partial", levels: []models.CompletionLevel{F, F, P}, end: today, want: 0},
		{name: "today not recorded yet", levels: []models.CompletionLevel{F, F}, end: calendar.AddDays(today, -1), want: 0},
		{name: "future records ignored", levels: []models.CompletionLevel{F, F, F}, end: calendar.AddDays(today, 1), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(history(tt.end, tt.levels...), today))
		})
	}
}

func TestCurrentStreak_UnsortedInput(t *testing.T) {
	records := history(today, F, F, F, F)
	shuffled := []models.DailyCompletion{records[2], records[0], records[3], records[1]}
	assert.Equal(t, 4, CurrentStreak(shuffled, today))
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name   string
		levels []models.CompletionLevel
		want   int
	}{
		{name: "empty", levels: nil, want: 0},
		{name: "single full", levels: []models.CompletionLevel{F}, want: 1},
		{name: "single partial", levels: []models.CompletionLevel{P}, want: 0},
		{name: "run interrupted by none", levels: []models.CompletionLevel{F, F, N, F, F, F}, want: 3},
		{name: "run interrupted by gap", levels: []models.CompletionLevel{F, F, F, X, F, F}, want: 3},
		{name: "gap then longer run", levels: []models.CompletionLevel{F, X, F, F, F, F}, want: 4},
		{name: "partial breaks", levels: []models.CompletionLevel{F, P, F}, want: 1},
		{name: "nothing full", levels: []models.CompletionLevel{N, P, N}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestStreak(history(today, tt.levels...)))
		})
	}
}

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, 0.0, CompletionPercentage(nil))
	assert.Equal(t, 100.0, CompletionPercentage(history(today, F)))
	assert.Equal(t, 0.0, CompletionPercentage(history(today, N)))
	assert.InDelta(t, 50.0, CompletionPercentage(history(today, F, P)), 1e-9)
	assert.InDelta(t, 100.0/3, CompletionPercentage(history(today, F, N, P)), 1e-9)
}

func TestMonthIntensity(t *testing.T) {
	// Two full and two partial days in a 31-day month.
	records := history(time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC), F, F, P, P)
	// A record from the previous month does not count.
	records = append(records, models.NewDailyCompletion(uuid.New(), time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), F))

	assert.InDelta(t, 3.0/31*100, MonthIntensity(records, today), 1e-9)
}

func TestCompute(t *testing.T) {
	stats := Compute(history(today, F, F, N, F, F, F), today)
	assert.Equal(t, 3, stats.CurrentStreak)
	assert.Equal(t, 3, stats.LongestStreak)
	assert.InDelta(t, 5.0/6*100, stats.CompletionPercentage, 1e-9)
}
