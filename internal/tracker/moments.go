package tracker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/models"
)

// AddMoment records a memorable moment. A zero date means now; a linked skill must
// exist.
func (t *Tracker) AddMoment(m models.MemorableMoment) (models.MemorableMoment, error) {
	if strings.TrimSpace(m.Title) == "" {
		return models.MemorableMoment{}, fmt.Errorf("moment title cannot be empty")
	}
	if m.Category == "" {
		m.Category = models.MomentAchievement
	}
	if _, err := models.ParseMomentCategory(string(m.Category)); err != nil {
		return models.MemorableMoment{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if m.SkillID != nil {
		if _, ok := t.skill(*m.SkillID); !ok {
			return models.MemorableMoment{}, ErrSkillNotFound
		}
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Date.IsZero() {
		m.Date = t.clock.Now()
	}

	t.state.Moments = append(t.state.Moments, m)
	t.persist(constants.KeyMemorableMoments)
	return m, nil
}

// Moments returns all moments, newest first.
func (t *Tracker) Moments() []models.MemorableMoment {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := append([]models.MemorableMoment(nil), t.state.Moments...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (t *Tracker) DeleteMoment(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, m := range t.state.Moments {
		if m.ID == id {
			t.state.Moments = append(t.state.Moments[:i], t.state.Moments[i+1:]...)
			t.persist(constants.KeyMemorableMoments)
			return nil
		}
	}
	return ErrMomentNotFound
}
