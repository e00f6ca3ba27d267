package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/models"
	"github.com/julianstephens/skilltrack/internal/progress"
)

// UpsertCompletion records level for the skill on date's calendar day. An existing
// record for that day is updated in place and keeps its id. Touching today also keeps
// the completed-today set in step.
func (t *Tracker) UpsertCompletion(skillID uuid.UUID, date time.Time, level models.CompletionLevel) (models.DailyCompletion, error) {
	if !level.Valid() {
		return models.DailyCompletion{}, fmt.Errorf("invalid completion level %q", level)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.upsert(skillID, date, level, t.today()), nil
}

func (t *Tracker) upsert(skillID uuid.UUID, date time.Time, level models.CompletionLevel, today time.Time) models.DailyCompletion {
	day := calendar.StartOfDay(date.In(today.Location()))

	var rec models.DailyCompletion
	if i := t.completionIndex(skillID, day); i >= 0 {
		t.state.Completions[i].SetLevel(level)
		rec = t.state.Completions[i]
	} else {
		rec = models.NewDailyCompletion(skillID, day, level)
		t.state.Completions = append(t.state.Completions, rec)
	}

	if calendar.SameDay(today, day) {
		if level.IsFull() {
			t.state.CompletedTaskIDs[skillID] = struct{}{}
		} else {
			delete(t.state.CompletedTaskIDs, skillID)
		}
		t.persist(constants.KeyDailyCompletions, constants.KeyCompletedTaskIDs)
	} else {
		t.persist(constants.KeyDailyCompletions)
	}
	return rec
}

func (t *Tracker) completionIndex(skillID uuid.UUID, day time.Time) int {
	for i, c := range t.state.Completions {
		if c.SkillID == skillID && calendar.SameDay(c.Date, day) {
			return i
		}
	}
	return -1
}

func (t *Tracker) level(skillID uuid.UUID, day time.Time) models.CompletionLevel {
	if i := t.completionIndex(skillID, day); i >= 0 {
		return t.state.Completions[i].CompletionLevel
	}
	return models.CompletionNone
}

// ToggleToday flips the skill between full and none for today and returns the new
// level. A partial day becomes full, so two calls restore the starting level only when
// it was none or full.
func (t *Tracker) ToggleToday(skillID uuid.UUID) (models.CompletionLevel, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.skill(skillID); !ok {
		return "", ErrSkillNotFound
	}

	today := t.today()
	next := t.level(skillID, today).Toggle()
	t.upsert(skillID, today, next, today)
	return next, nil
}

// CompletionLevel returns the recorded level for the skill on date, none if absent.
func (t *Tracker) CompletionLevel(skillID uuid.UUID, date time.Time) models.CompletionLevel {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.level(skillID, date.In(t.today().Location()))
}

// Completions returns the skill's records sorted by day.
func (t *Tracker) Completions(skillID uuid.UUID) []models.DailyCompletion {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.completionsFor(skillID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (t *Tracker) completionsFor(skillID uuid.UUID) []models.DailyCompletion {
	var out []models.DailyCompletion
	for _, c := range t.state.Completions {
		if c.SkillID == skillID {
			out = append(out, c)
		}
	}
	return out
}

// RebuildCompletedTaskIDs recomputes the completed-today set from the completion
// history.
func (t *Tracker) RebuildCompletedTaskIDs() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rebuildCompletedTaskIDs(t.today())
	t.persist(constants.KeyCompletedTaskIDs)
}

func (t *Tracker) rebuildCompletedTaskIDs(today time.Time) {
	ids := make(map[uuid.UUID]struct{})
	for _, c := range t.state.Completions {
		if c.CompletionLevel.IsFull() && calendar.SameDay(today, c.Date) {
			ids[c.SkillID] = struct{}{}
		}
	}
	t.state.CompletedTaskIDs = ids
}

// SetCompletedTaskIDs replaces the completed-today set and rewrites today's records to
// match it: listed skills become full, and skills that were full but are no longer
// listed become none. Partial records for unlisted skills are left alone.
func (t *Tracker) SetCompletedTaskIDs(ids []uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.today()
	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	for id := range want {
		if !t.level(id, today).IsFull() {
			t.upsert(id, today, models.CompletionFull, today)
		}
	}
	for id := range t.state.CompletedTaskIDs {
		if _, keep := want[id]; !keep {
			t.upsert(id, today, models.CompletionNone, today)
		}
	}

	t.rebuildCompletedTaskIDs(today)
	t.persist(constants.KeyDailyCompletions, constants.KeyCompletedTaskIDs)
}

// CompletedTaskIDs returns today's fully completed skill ids, sorted.
func (t *Tracker) CompletedTaskIDs() []uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]uuid.UUID, 0, len(t.state.CompletedTaskIDs))
	for id := range t.state.CompletedTaskIDs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// GetProgress returns nil when the skill is unknown.
func (t *Tracker) GetProgress(skillID uuid.UUID) *models.SkillProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	skill, ok := t.skill(skillID)
	if !ok {
		return nil
	}
	p := progress.ForSkill(skill, t.completionsFor(skillID), t.today())
	return &p
}

// GetAllProgress returns one entry per skill, in skill-list order.
func (t *Tracker) GetAllProgress() []models.SkillProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.today()
	out := make([]models.SkillProgress, 0, len(t.state.Skills))
	for _, s := range t.state.Skills {
		out = append(out, progress.ForSkill(s, t.completionsFor(s.ID), today))
	}
	return out
}

// OrphanedCompletions counts records whose skill no longer exists.
func (t *Tracker) OrphanedCompletions() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	known := t.knownSkills()
	n := 0
	for _, c := range t.state.Completions {
		if _, ok := known[c.SkillID]; !ok {
			n++
		}
	}
	return n
}

func (t *Tracker) knownSkills() map[uuid.UUID]struct{} {
	known := make(map[uuid.UUID]struct{}, len(t.state.Skills))
	for _, s := range t.state.Skills {
		known[s.ID] = struct{}{}
	}
	return known
}

// PruneOrphanedCompletions deletes records whose skill no longer exists and returns
// how many were removed.
func (t *Tracker) PruneOrphanedCompletions() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	known := t.knownSkills()

	kept := t.state.Completions[:0]
	removed := 0
	for _, c := range t.state.Completions {
		if _, ok := known[c.SkillID]; ok {
			kept = append(kept, c)
		} else {
			removed++
		}
	}
	t.state.Completions = kept

	if removed > 0 {
		t.persist(constants.KeyDailyCompletions)
	}
	return removed
}
