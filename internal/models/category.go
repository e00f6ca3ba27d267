package models

import (
	"strings"

	"github.com/google/uuid"
)

// SkillCategory groups skills. Predefined categories are constants; custom ones belong
// to the user and are referenced by value.
type SkillCategory struct {
	ID        string
	Name      string
	Icon      string
	ColorName string
	IsCustom  bool
}

var (
	CategoryPersonalDevelopment = SkillCategory{ID: "personalDevelopment", Name: "Personal Development", Icon: "person.fill", ColorName: "blue"}
	CategoryFitness             = SkillCategory{ID: "fitness", Name: "Fitness", Icon: "figure.run", ColorName: "red"}
	CategoryLearning            = SkillCategory{ID: "learning", Name: "Learning", Icon: "book.fill", ColorName: "purple"}
	CategoryProfessionalGrowth  = SkillCategory{ID: "professionalGrowth", Name: "Professional Growth", Icon: "briefcase.fill", ColorName: "orange"}
	CategoryHealth              = SkillCategory{ID: "health", Name: "Health", Icon: "heart.fill", ColorName: "pink"}
	CategoryCreativeSkills      = SkillCategory{ID: "creativeSkills", Name: "Creative Skills", Icon: "paintbrush.fill", ColorName: "green"}
	CategoryMindfulness         = SkillCategory{ID: "mindfulness", Name: "Mindfulness", Icon: "leaf.fill", ColorName: "mint"}
	CategoryNutrition           = SkillCategory{ID: "nutrition", Name: "Nutrition", Icon: "fork.knife", ColorName: "red"}
	CategoryHydration           = SkillCategory{ID: "hydration", Name: "Hydration", Icon: "drop.fill", ColorName: "cyan"}
)

// PredefinedCategories returns a fresh copy of the built-in categories.
func PredefinedCategories() []SkillCategory {
	return []SkillCategory{
		CategoryPersonalDevelopment,
		CategoryFitness,
		CategoryLearning,
		CategoryProfessionalGrowth,
		CategoryHealth,
		CategoryCreativeSkills,
		CategoryMindfulness,
		CategoryNutrition,
		CategoryHydration,
	}
}

// NewCustomCategory creates a user category with a fresh id. Empty icon or color fall
// back to "tag.fill" and "gray".
func NewCustomCategory(name, icon, colorName string) SkillCategory {
	if icon == "" {
		icon = "tag.fill"
	}
	if colorName == "" {
		colorName = "gray"
	}
	return SkillCategory{
		ID:        uuid.NewString(),
		Name:      name,
		Icon:      icon,
		ColorName: colorName,
		IsCustom:  true,
	}
}

// Same reports whether two categories refer to the same thing (by id or by name).
func (c SkillCategory) Same(other SkillCategory) bool {
	if c.ID != "" && c.ID == other.ID {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(other.Name))
}
