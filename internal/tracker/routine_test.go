package tracker

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/skilltrack/internal/models"
)

func habitNames(habits []models.MorningHabit) []string {
	names := make([]string, len(habits))
	for i, h := range habits {
		names[i] = h.Name
	}
	return names
}

func TestCycleAndToggleCompletion(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	habit, err := tr.AddHabit(models.MorningHabit{Name: "Stretch"})
	require.NoError(t, err)

	cycle := []models.CompletionLevel{models.CompletionPartial, models.CompletionFull, models.CompletionNone}
	for _, want := range cycle {
		got, err := tr.CycleCompletion(habit.ID, testNow)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := tr.ToggleCompletion(habit.ID, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionFull, got)
	got, err = tr.ToggleCompletion(habit.ID, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionNone, got)

	// Days are independent.
	_, err = tr.CycleCompletion(habit.ID, daysAgo(1))
	require.NoError(t, err)
	assert.Equal(t, models.CompletionPartial, tr.RoutineLevel(habit.ID, daysAgo(1)))
	assert.Equal(t, models.CompletionNone, tr.RoutineLevel(habit.ID, testNow))

	_, err = tr.CycleCompletion(uuid.New(), testNow)
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestCycleCompletion_FromUnrecordedDay(t *testing.T) {
	tr, store, clock := newTestTracker(t)
	habit, err := tr.AddHabit(models.MorningHabit{Name: "Stretch"})
	require.NoError(t, err)

	for n := 0; n < 3; n++ {
		got, err := tr.CycleCompletion(habit.ID, daysAgo(n))
		require.NoError(t, err)
		assert.Equal(t, models.CompletionPartial, got, "day -%d", n)
	}
	got, err := tr.CycleCompletion(habit.ID, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionFull, got)

	reloaded := New(store, clock)
	reloaded.Load()
	assert.Equal(t, models.CompletionFull, reloaded.RoutineLevel(habit.ID, testNow))
	assert.Equal(t, models.CompletionPartial, reloaded.RoutineLevel(habit.ID, daysAgo(2)))
}

func TestTrackWeightHabitIsDerived(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	weigh, err := tr.AddHabit(models.MorningHabit{Name: "  Track Weight "})
	require.NoError(t, err)

	_, err = tr.CycleCompletion(weigh.ID, testNow)
	assert.ErrorIs(t, err, ErrDerivedHabit)
	_, err = tr.ToggleCompletion(weigh.ID, testNow)
	assert.ErrorIs(t, err, ErrDerivedHabit)
	assert.Equal(t, models.CompletionNone, tr.RoutineLevel(weigh.ID, testNow))

	_, err = tr.RecordWeight(71.2, testNow)
	require.NoError(t, err)
	assert.Equal(t, models.CompletionFull, tr.RoutineLevel(weigh.ID, testNow))
	assert.Equal(t, models.CompletionNone, tr.RoutineLevel(weigh.ID, daysAgo(1)))
}

func TestHabitOrdering(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	var ids []uuid.UUID
	for _, name := range []string{"A", "B", "C", "D"} {
		h, err := tr.AddHabit(models.MorningHabit{Name: name})
		require.NoError(t, err)
		ids = append(ids, h.ID)
	}

	require.NoError(t, tr.MoveHabit(ids[3], 0))
	assert.Equal(t, []string{"D", "A", "B", "C"}, habitNames(tr.Habits()))

	require.NoError(t, tr.MoveHabit(ids[3], 99))
	assert.Equal(t, []string{"A", "B", "C", "D"}, habitNames(tr.Habits()))

	_, err := tr.CycleCompletion(ids[1], testNow)
	require.NoError(t, err)
	require.NoError(t, tr.DeleteHabit(ids[1]))
	assert.Equal(t, []string{"A", "C", "D"}, habitNames(tr.Habits()))
	assert.Equal(t, models.CompletionNone, tr.RoutineLevel(ids[1], testNow))

	for i, h := range tr.Habits() {
		assert.Equal(t, i, h.Order, "orders stay dense")
	}

	assert.ErrorIs(t, tr.DeleteHabit(ids[1]), ErrHabitNotFound)
}

func TestUpdateHabit_KeepsPosition(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	_, err := tr.AddHabit(models.MorningHabit{Name: "A"})
	require.NoError(t, err)
	b, err := tr.AddHabit(models.MorningHabit{Name: "B"})
	require.NoError(t, err)

	b.Name = "B2"
	b.Order = 0
	require.NoError(t, tr.UpdateHabit(b))
	assert.Equal(t, []string{"A", "B2"}, habitNames(tr.Habits()))

	found, err := tr.FindHabit("b2")
	require.NoError(t, err)
	assert.Equal(t, b.ID, found.ID)
}
