package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/models"
)

// AddHabit appends a habit at the end of the routine.
func (t *Tracker) AddHabit(habit models.MorningHabit) (models.MorningHabit, error) {
	if strings.TrimSpace(habit.Name) == "" {
		return models.MorningHabit{}, fmt.Errorf("habit name cannot be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if habit.ID == uuid.Nil {
		habit.ID = uuid.New()
	}
	habit.Order = len(t.state.Habits)
	t.state.Habits = append(t.state.Habits, habit)
	t.renumberHabits()
	t.persist(constants.KeyMorningHabits)
	return habit, nil
}

// UpdateHabit replaces a habit's fields. Its position in the routine is unchanged; use
// MoveHabit to reorder.
func (t *Tracker) UpdateHabit(habit models.MorningHabit) error {
	if strings.TrimSpace(habit.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.habitIndex(habit.ID)
	if i < 0 {
		return ErrHabitNotFound
	}
	habit.Order = t.state.Habits[i].Order
	t.state.Habits[i] = habit
	t.persist(constants.KeyMorningHabits)
	return nil
}

// DeleteHabit removes a habit with its completion entries and renumbers the rest.
func (t *Tracker) DeleteHabit(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.habitIndex(id)
	if i < 0 {
		return ErrHabitNotFound
	}
	t.state.Habits = append(t.state.Habits[:i], t.state.Habits[i+1:]...)
	t.renumberHabits()

	for key := range t.state.Routine {
		if key.HabitID == id {
			delete(t.state.Routine, key)
		}
	}
	t.persist(constants.KeyMorningHabits, constants.KeyMorningRoutineCompletions)
	return nil
}

// MoveHabit moves a habit to index, clamped to the list bounds.
func (t *Tracker) MoveHabit(id uuid.UUID, index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.habitIndex(id)
	if i < 0 {
		return ErrHabitNotFound
	}
	if index < 0 {
		index = 0
	}
	if index >= len(t.state.Habits) {
		index = len(t.state.Habits) - 1
	}

	habit := t.state.Habits[i]
	rest := append(t.state.Habits[:i:i], t.state.Habits[i+1:]...)
	moved := make([]models.MorningHabit, 0, len(t.state.Habits))
	moved = append(moved, rest[:index]...)
	moved = append(moved, habit)
	moved = append(moved, rest[index:]...)

	t.state.Habits = moved
	t.renumberHabits()
	t.persist(constants.KeyMorningHabits)
	return nil
}

// Habits returns the routine in order.
func (t *Tracker) Habits() []models.MorningHabit {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.MorningHabit(nil), t.state.Habits...)
}

// FindHabit resolves a habit by id or case-insensitive name.
func (t *Tracker) FindHabit(ref string) (models.MorningHabit, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ref = strings.TrimSpace(ref)
	id, idErr := uuid.Parse(ref)
	for _, h := range t.state.Habits {
		if (idErr == nil && h.ID == id) || strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.MorningHabit{}, fmt.Errorf("%w: %q", ErrHabitNotFound, ref)
}

// CycleCompletion advances the habit's level on date through none, partial, full and
// back to none.
func (t *Tracker) CycleCompletion(habitID uuid.UUID, date time.Time) (models.CompletionLevel, error) {
	return t.stepHabit(habitID, date, models.CompletionLevel.Next)
}

// ToggleCompletion flips the habit's level on date between none and full.
func (t *Tracker) ToggleCompletion(habitID uuid.UUID, date time.Time) (models.CompletionLevel, error) {
	return t.stepHabit(habitID, date, models.CompletionLevel.Toggle)
}

func (t *Tracker) stepHabit(habitID uuid.UUID, date time.Time, step func(models.CompletionLevel) models.CompletionLevel) (models.CompletionLevel, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.habitIndex(habitID)
	if i < 0 {
		return "", ErrHabitNotFound
	}
	if t.state.Habits[i].IsTrackWeight() {
		return "", ErrDerivedHabit
	}

	key := models.NewRoutineKey(habitID, date.In(t.today().Location()))
	current, ok := t.state.Routine[key]
	if !ok {
		current = models.CompletionNone
	}
	next := step(current)
	t.setRoutine(key, next)
	t.persist(constants.KeyMorningRoutineCompletions)
	return next, nil
}

// setRoutine updates the in-memory routine map only; callers persist.
func (t *Tracker) setRoutine(key models.RoutineKey, level models.CompletionLevel) {
	if level == models.CompletionNone {
		delete(t.state.Routine, key)
	} else {
		t.state.Routine[key] = level
	}
}

// RoutineLevel returns the habit's level on date, none if unrecorded.
func (t *Tracker) RoutineLevel(habitID uuid.UUID, date time.Time) models.CompletionLevel {
	t.mu.Lock()
	defer t.mu.Unlock()

	level, ok := t.state.Routine[models.NewRoutineKey(habitID, date.In(t.today().Location()))]
	if !ok {
		return models.CompletionNone
	}
	return level
}

func (t *Tracker) habitIndex(id uuid.UUID) int {
	for i, h := range t.state.Habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) trackWeightHabit() (models.MorningHabit, bool) {
	for _, h := range t.state.Habits {
		if h.IsTrackWeight() {
			return h, true
		}
	}
	return models.MorningHabit{}, false
}

// renumberHabits rewrites orders to match list positions, 0..n-1.
func (t *Tracker) renumberHabits() {
	for i := range t.state.Habits {
		t.state.Habits[i].Order = i
	}
}
