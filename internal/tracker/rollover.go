package tracker

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/models"
)

// Task is one row of a day's task list.
type Task struct {
	Skill      models.Skill
	Level      models.CompletionLevel
	RolledOver bool
}

// RolloverTask defers the skill to today, making it visible regardless of its
// schedule. Completion records are not touched.
func (t *Tracker) RolloverTask(skillID uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.skill(skillID); !ok {
		return ErrSkillNotFound
	}
	t.state.Rollovers[skillID] = t.today()
	delete(t.state.RolloverCarried, skillID)
	t.persist(constants.KeyRolloverTasks, constants.KeyRolloverCarried)
	return nil
}

// ShouldShowTask reports whether the skill appears on date's task list: it was rolled
// over to that day, or its time frame is active then.
func (t *Tracker) ShouldShowTask(skillID uuid.UUID, date time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	skill, ok := t.skill(skillID)
	if !ok {
		return false
	}
	return t.shouldShow(skill, date)
}

func (t *Tracker) shouldShow(skill models.Skill, date time.Time) bool {
	if t.rolledOverTo(skill.ID, date) {
		return true
	}
	return skill.IsActive(date)
}

func (t *Tracker) rolledOverTo(skillID uuid.UUID, date time.Time) bool {
	day, ok := t.state.Rollovers[skillID]
	return ok && calendar.SameDay(day, date)
}

// ProcessRolloverOnLoad carries yesterday's deferrals to today and drops anything
// older. A deferral is carried at most once, so an untouched rollover disappears on
// the second day. Load already runs it once.
func (t *Tracker) ProcessRolloverOnLoad() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.processRollovers(t.today())
	t.persist(constants.KeyRolloverTasks, constants.KeyRolloverCarried)
}

func (t *Tracker) processRollovers(today time.Time) {
	for id, day := range t.state.Rollovers {
		_, carried := t.state.RolloverCarried[id]
		switch age := calendar.DaysBetween(day, today); {
		case age == 1 && !carried:
			t.state.Rollovers[id] = today
			t.state.RolloverCarried[id] = struct{}{}
		case age >= 1:
			delete(t.state.Rollovers, id)
			delete(t.state.RolloverCarried, id)
		}
	}
	for id := range t.state.RolloverCarried {
		if _, ok := t.state.Rollovers[id]; !ok {
			delete(t.state.RolloverCarried, id)
		}
	}
}

// Rollovers returns a copy of the skill id to deferred day map.
func (t *Tracker) Rollovers() map[uuid.UUID]time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[uuid.UUID]time.Time, len(t.state.Rollovers))
	for id, day := range t.state.Rollovers {
		out[id] = day
	}
	return out
}

// TasksForDay lists the visible skills for date in skill-list order.
func (t *Tracker) TasksForDay(date time.Time) []Task {
	t.mu.Lock()
	defer t.mu.Unlock()

	day := calendar.StartOfDay(date.In(t.today().Location()))
	var out []Task
	for _, s := range t.state.Skills {
		if !t.shouldShow(s, day) {
			continue
		}
		out = append(out, Task{
			Skill:      s,
			Level:      t.level(s.ID, day),
			RolledOver: t.rolledOverTo(s.ID, day),
		})
	}
	return out
}
