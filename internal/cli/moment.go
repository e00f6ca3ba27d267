package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/models"
)

type MomentCmd struct {
	Add    MomentAddCmd    `cmd:"" help:"Record a memorable moment."`
	List   MomentListCmd   `cmd:"" help:"List moments, newest first." default:"1"`
	Delete MomentDeleteCmd `cmd:"" help:"Delete a moment."`
}

type MomentAddCmd struct {
	Title       string `arg:"" help:"Short title."`
	Description string `help:"Longer description."`
	Category    string `help:"Achievement, Milestone, Breakthrough or Personal." default:"Achievement"`
	Skill       string `help:"Link the moment to a skill (name or id)."`
	Date        string `help:"Date in YYYY-MM-DD format (default: now)."`
}

func (c *MomentAddCmd) Run(ctx *Context) error {
	category, err := models.ParseMomentCategory(c.Category)
	if err != nil {
		return err
	}
	m := models.MemorableMoment{
		Title:       c.Title,
		Description: c.Description,
		Category:    category,
	}
	if c.Skill != "" {
		skill, err := ctx.Tracker.FindSkill(c.Skill)
		if err != nil {
			return err
		}
		m.SkillID = &skill.ID
	}
	if c.Date != "" {
		day, err := ctx.parseDate(c.Date)
		if err != nil {
			return err
		}
		m.Date = day
	}

	added, err := ctx.Tracker.AddMoment(m)
	if err != nil {
		return err
	}
	ctx.printf("Recorded moment: %s (%s)\n", added.Title, shortID(added.ID))
	return nil
}

type MomentListCmd struct{}

func (c *MomentListCmd) Run(ctx *Context) error {
	moments := ctx.Tracker.Moments()
	if len(moments) == 0 {
		ctx.println("No memorable moments yet.")
		return nil
	}
	for _, m := range moments {
		skill := ""
		if m.SkillID != nil {
			if s, ok := ctx.Tracker.Skill(*m.SkillID); ok {
				skill = " · " + s.Name
			}
		}
		ctx.printf("%s  %s  %s\n", mutedStyle.Render(shortID(m.ID)), m.Date.Format("2006-01-02"), titleStyle.Render(m.Title))
		ctx.printf("          %s%s\n", m.Category, skill)
		if m.Description != "" {
			ctx.printf("          %s\n", mutedStyle.Render(m.Description))
		}
	}
	return nil
}

type MomentDeleteCmd struct {
	ID string `arg:"" help:"Moment id or unique id prefix."`
}

func (c *MomentDeleteCmd) Run(ctx *Context) error {
	id, err := resolveMoment(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Tracker.DeleteMoment(id); err != nil {
		return err
	}
	ctx.println("Deleted moment.")
	return nil
}

func resolveMoment(ctx *Context, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}
	ref = strings.ToLower(strings.TrimSpace(ref))
	var matches []uuid.UUID
	for _, m := range ctx.Tracker.Moments() {
		if ref != "" && strings.HasPrefix(m.ID.String(), ref) {
			matches = append(matches, m.ID)
		}
	}
	switch len(matches) {
	case 0:
		return uuid.Nil, fmt.Errorf("moment %q not found", ref)
	case 1:
		return matches[0], nil
	default:
		return uuid.Nil, fmt.Errorf("moment id prefix %q is ambiguous", ref)
	}
}
