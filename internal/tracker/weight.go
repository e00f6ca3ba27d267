package tracker

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/models"
)

// RecordWeight stores weight for date's day, replacing any entry already on that day,
// and marks the track weight habit full for the day. Range checks are left to
// CleanupWeights.
func (t *Tracker) RecordWeight(weight float64, date time.Time) (models.WeightEntry, error) {
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return models.WeightEntry{}, ErrInvalidWeight
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	entry := models.NewWeightEntry(weight, date.In(t.today().Location()))

	kept := t.state.Weights[:0]
	for _, w := range t.state.Weights {
		if !calendar.SameDay(w.Date, entry.Date) {
			kept = append(kept, w)
		}
	}
	t.state.Weights = append(kept, entry)
	sortWeights(t.state.Weights)

	keys := []string{constants.KeyWeightEntries}
	if habit, ok := t.trackWeightHabit(); ok {
		t.setRoutine(models.NewRoutineKey(habit.ID, entry.Date), models.CompletionFull)
		keys = append(keys, constants.KeyMorningRoutineCompletions)
	}
	t.persist(keys...)
	return entry, nil
}

// WeightOn returns the weight recorded on date's day.
func (t *Tracker) WeightOn(date time.Time) (float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, w := range t.state.Weights {
		if calendar.SameDay(w.Date, date) {
			return w.Weight, true
		}
	}
	return 0, false
}

// CleanupWeights drops entries older than the retention window or outside the
// plausible range, and returns how many were removed.
func (t *Tracker) CleanupWeights() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	kept := t.state.Weights[:0]
	for _, w := range t.state.Weights {
		if w.Retained(now) {
			kept = append(kept, w)
		}
	}
	removed := len(t.state.Weights) - len(kept)
	t.state.Weights = kept
	sortWeights(t.state.Weights)

	if removed > 0 {
		t.persist(constants.KeyWeightEntries)
	}
	return removed
}

// WeightEntries returns the log oldest first.
func (t *Tracker) WeightEntries() []models.WeightEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.WeightEntry(nil), t.state.Weights...)
}

func (t *Tracker) LatestWeight() (models.WeightEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.state.Weights) == 0 {
		return models.WeightEntry{}, false
	}
	return t.state.Weights[len(t.state.Weights)-1], true
}

// WeightTrend is the change between the first and last entries of the trailing week.
// It needs at least two entries in that window.
func (t *Tracker) WeightTrend() (float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.today()
	from := calendar.AddDays(today, -(constants.WeightTrendWindow - 1))

	var window []models.WeightEntry
	for _, w := range t.state.Weights {
		if !w.Date.Before(from) && calendar.DaysBetween(w.Date, today) >= 0 {
			window = append(window, w)
		}
	}
	if len(window) < 2 {
		return 0, false
	}
	return window[len(window)-1].Weight - window[0].Weight, true
}

func sortWeights(weights []models.WeightEntry) {
	sort.SliceStable(weights, func(i, j int) bool { return weights[i].Date.Before(weights[j].Date) })
}
