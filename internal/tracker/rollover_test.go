package tracker

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/models"
	"github.com/julianstephens/skilltrack/internal/storage"
)

func inactiveSkill(t *testing.T, tr *Tracker) models.Skill {
	t.Helper()

	s := models.NewSkill("Exam prep", models.CategoryLearning, "", daysAgo(20))
	s.TimeFrame = models.FixedTimeFrame(daysAgo(20), daysAgo(10))
	s, err := tr.AddSkill(s)
	require.NoError(t, err)
	return s
}

func TestRolloverTask_ForcesVisibility(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	skill := inactiveSkill(t, tr)

	assert.False(t, tr.ShouldShowTask(skill.ID, testNow))

	require.NoError(t, tr.RolloverTask(skill.ID))
	assert.True(t, tr.ShouldShowTask(skill.ID, testNow))
	assert.False(t, tr.ShouldShowTask(skill.ID, calendar.AddDays(testNow, 1)), "rollover only covers its own day")
	assert.Equal(t, models.CompletionNone, tr.CompletionLevel(skill.ID, testNow), "rollover does not touch completions")

	assert.ErrorIs(t, tr.RolloverTask(uuid.New()), ErrSkillNotFound)
}

func TestProcessRolloverOnLoad_CarriesOnceThenPurges(t *testing.T) {
	store := storage.NewMemoryStore()
	clock := calendar.NewFixedClock(testNow)

	tr := New(store, clock)
	tr.Load()
	skill := inactiveSkill(t, tr)
	require.NoError(t, tr.RolloverTask(skill.ID))

	// Next day: yesterday's deferral is carried to today.
	clock.AdvanceDays(1)
	day2 := New(store, clock)
	day2.Load()
	require.Contains(t, day2.Rollovers(), skill.ID)
	assert.True(t, calendar.SameDay(day2.Rollovers()[skill.ID], clock.Now()))
	assert.True(t, day2.ShouldShowTask(skill.ID, clock.Now()))

	// Loading again the same day changes nothing.
	again := New(store, clock)
	again.Load()
	assert.Contains(t, again.Rollovers(), skill.ID)

	// The day after that it is gone.
	clock.AdvanceDays(1)
	day3 := New(store, clock)
	day3.Load()
	assert.NotContains(t, day3.Rollovers(), skill.ID)
	assert.False(t, day3.ShouldShowTask(skill.ID, clock.Now()))
}

func TestProcessRolloverOnLoad_DropsOldEntries(t *testing.T) {
	tr, _, clock := newTestTracker(t)
	skill := inactiveSkill(t, tr)
	require.NoError(t, tr.RolloverTask(skill.ID))

	clock.AdvanceDays(3)
	tr.ProcessRolloverOnLoad()
	assert.Empty(t, tr.Rollovers())
}

func TestRolloverTask_AgainResetsCarry(t *testing.T) {
	tr, _, clock := newTestTracker(t)
	skill := inactiveSkill(t, tr)
	require.NoError(t, tr.RolloverTask(skill.ID))

	clock.AdvanceDays(1)
	tr.ProcessRolloverOnLoad()
	require.NoError(t, tr.RolloverTask(skill.ID))

	clock.AdvanceDays(1)
	tr.ProcessRolloverOnLoad()
	assert.Contains(t, tr.Rollovers(), skill.ID, "an explicit rollover is carried again")
}

func TestTasksForDay(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	active := addSkill(t, tr, "Coding")
	hidden := inactiveSkill(t, tr)
	rolled := inactiveSkill(t, tr)
	require.NoError(t, tr.RolloverTask(rolled.ID))
	_, err := tr.UpsertCompletion(active.ID, testNow, models.CompletionPartial)
	require.NoError(t, err)

	tasks := tr.TasksForDay(testNow)
	require.Len(t, tasks, 2)

	assert.Equal(t, active.ID, tasks[0].Skill.ID)
	assert.Equal(t, models.CompletionPartial, tasks[0].Level)
	assert.False(t, tasks[0].RolledOver)

	assert.Equal(t, rolled.ID, tasks[1].Skill.ID)
	assert.True(t, tasks[1].RolledOver)

	for _, task := range tasks {
		assert.NotEqual(t, hidden.ID, task.Skill.ID)
	}
}
