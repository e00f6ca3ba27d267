package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MomentCategory string

const (
	MomentAchievement  MomentCategory = "Achievement"
	MomentMilestone    MomentCategory = "Milestone"
	MomentBreakthrough MomentCategory = "Breakthrough"
	MomentPersonal     MomentCategory = "Personal"
)

func ParseMomentCategory(s string) (MomentCategory, error) {
	switch MomentCategory(s) {
	case MomentAchievement, MomentMilestone, MomentBreakthrough, MomentPersonal:
		return MomentCategory(s), nil
	}
	switch s {
	case "achievement":
		return MomentAchievement, nil
	case "milestone":
		return MomentMilestone, nil
	case "breakthrough":
		return MomentBreakthrough, nil
	case "personal":
		return MomentPersonal, nil
	}
	return "", fmt.Errorf("invalid moment category %q", s)
}

// MemorableMoment records a special achievement, optionally tied to a skill.
type MemorableMoment struct {
	ID          uuid.UUID
	SkillID     *uuid.UUID
	Date        time.Time
	Title       string
	Description string
	Category    MomentCategory
}
