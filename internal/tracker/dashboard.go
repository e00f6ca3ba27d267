package tracker

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/progress"
)

// Dashboard is the at-a-glance summary across all skills.
type Dashboard struct {
	BestCurrentStreak int
	BestStreakSkill   string
	TasksDoneToday    int
	TotalSkills       int
	MasteredSkills    int
	TodayPercentage   float64
}

func (t *Tracker) Dashboard() Dashboard {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := t.today()
	d := Dashboard{
		TasksDoneToday: len(t.state.CompletedTaskIDs),
		TotalSkills:    len(t.state.Skills),
	}

	for _, s := range t.state.Skills {
		stats := progress.Compute(t.completionsFor(s.ID), today)
		if stats.CurrentStreak > d.BestCurrentStreak {
			d.BestCurrentStreak = stats.CurrentStreak
			d.BestStreakSkill = s.Name
		}
		if stats.CompletionPercentage >= constants.MasteredPercentage {
			d.MasteredSkills++
		}
	}

	if d.TotalSkills > 0 {
		d.TodayPercentage = float64(d.TasksDoneToday) / float64(d.TotalSkills) * 100
	}
	return d
}

// HeatMap returns heat-map cells for one skill over window, ending today.
func (t *Tracker) HeatMap(skillID uuid.UUID, window progress.Window) ([]progress.Cell, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.skill(skillID); !ok {
		return nil, ErrSkillNotFound
	}
	return progress.HeatMap(t.completionsFor(skillID), window, t.clock.Now())
}

// MonthIntensity weights partial days as half of a full day across month.
func (t *Tracker) MonthIntensity(skillID uuid.UUID, month time.Time) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return progress.MonthIntensity(t.completionsFor(skillID), month)
}
