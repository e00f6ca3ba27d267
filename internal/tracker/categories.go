package tracker

import (
	"fmt"
	"strings"

	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/models"
)

// AddCustomCategory appends a user category. Names must be unique across predefined
// and custom categories, ignoring case.
func (t *Tracker) AddCustomCategory(name, icon, colorName string) (models.SkillCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SkillCategory{}, fmt.Errorf("category name cannot be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	candidate := models.NewCustomCategory(name, icon, colorName)
	for _, c := range t.allCategories() {
		if strings.EqualFold(c.Name, name) {
			return models.SkillCategory{}, fmt.Errorf("%w: %s", ErrCategoryExists, c.Name)
		}
	}

	t.state.CustomCategories = append(t.state.CustomCategories, candidate)
	t.persist(constants.KeyCustomCategories)
	return candidate, nil
}

// AllCategories returns the predefined categories followed by custom ones.
func (t *Tracker) AllCategories() []models.SkillCategory {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allCategories()
}

func (t *Tracker) allCategories() []models.SkillCategory {
	return append(models.PredefinedCategories(), t.state.CustomCategories...)
}

// FindCategory matches a category by id or case-insensitive name.
func (t *Tracker) FindCategory(ref string) (models.SkillCategory, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	probe := models.SkillCategory{ID: ref, Name: ref}
	for _, c := range t.allCategories() {
		if c.Same(probe) {
			return c, true
		}
	}
	return models.SkillCategory{}, false
}
