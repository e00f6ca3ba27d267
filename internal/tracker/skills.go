package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/models"
)

// AddSkill validates and appends a skill. A nil id is replaced with a fresh one and a
// zero start date defaults to today.
func (t *Tracker) AddSkill(skill models.Skill) (models.Skill, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	if skill.StartDate.IsZero() {
		skill.StartDate = t.today()
	}
	if skill.Frequency == "" {
		skill.Frequency = models.FrequencyDaily
	}
	if skill.TimeFrame.Kind == "" {
		skill.TimeFrame = models.OpenEndedTimeFrame()
	}
	skill.StartDate = calendar.StartOfDay(skill.StartDate)

	if err := skill.Validate(); err != nil {
		return models.Skill{}, err
	}
	if _, exists := t.skill(skill.ID); exists {
		return models.Skill{}, fmt.Errorf("skill %s already exists", skill.ID)
	}

	t.state.Skills = append(t.state.Skills, skill)
	t.persist(constants.KeySkills)
	return skill, nil
}

// UpdateSkill replaces the stored skill with the same id.
func (t *Tracker) UpdateSkill(skill models.Skill) error {
	if err := skill.Validate(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.state.Skills {
		if t.state.Skills[i].ID == skill.ID {
			skill.StartDate = calendar.StartOfDay(skill.StartDate)
			t.state.Skills[i] = skill
			t.persist(constants.KeySkills)
			return nil
		}
	}
	return ErrSkillNotFound
}

// DeleteSkill removes the skill from the active set, its rollover and today's
// completed set. Its completion history is kept; PruneOrphanedCompletions removes it.
func (t *Tracker) DeleteSkill(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := -1
	for i, s := range t.state.Skills {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrSkillNotFound
	}

	t.state.Skills = append(t.state.Skills[:idx], t.state.Skills[idx+1:]...)
	delete(t.state.Rollovers, id)
	delete(t.state.RolloverCarried, id)
	delete(t.state.CompletedTaskIDs, id)
	t.persist(constants.KeySkills, constants.KeyRolloverTasks, constants.KeyRolloverCarried, constants.KeyCompletedTaskIDs)
	return nil
}

// Skills returns a copy of the skill list in insertion order.
func (t *Tracker) Skills() []models.Skill {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.Skill(nil), t.state.Skills...)
}

func (t *Tracker) Skill(id uuid.UUID) (models.Skill, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.skill(id)
}

func (t *Tracker) skill(id uuid.UUID) (models.Skill, bool) {
	for _, s := range t.state.Skills {
		if s.ID == id {
			return s, true
		}
	}
	return models.Skill{}, false
}

// FindSkill resolves a skill by id, id prefix or case-insensitive name.
func (t *Tracker) FindSkill(ref string) (models.Skill, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ref = strings.TrimSpace(ref)
	if id, err := uuid.Parse(ref); err == nil {
		if s, ok := t.skill(id); ok {
			return s, nil
		}
		return models.Skill{}, ErrSkillNotFound
	}

	var matches []models.Skill
	for _, s := range t.state.Skills {
		if strings.EqualFold(s.Name, ref) {
			return s, nil
		}
		if len(ref) >= 4 && strings.HasPrefix(s.ID.String(), strings.ToLower(ref)) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return models.Skill{}, fmt.Errorf("%w: %q", ErrSkillNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Skill{}, fmt.Errorf("skill reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}

// ActiveSkills returns the skills whose time frame covers date.
func (t *Tracker) ActiveSkills(date time.Time) []models.Skill {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []models.Skill
	for _, s := range t.state.Skills {
		if s.IsActive(date) {
			out = append(out, s)
		}
	}
	return out
}

// ArchivedSkills returns the skills that are not active today.
func (t *Tracker) ArchivedSkills() []models.Skill {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.today()
	var out []models.Skill
	for _, s := range t.state.Skills {
		if s.IsArchived(today) {
			out = append(out, s)
		}
	}
	return out
}
