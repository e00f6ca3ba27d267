package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/skilltrack/internal/models"
)

type SkillCmd struct {
	Add    SkillAddCmd    `cmd:"" help:"Add a new skill."`
	List   SkillListCmd   `cmd:"" help:"List skills." default:"1"`
	Edit   SkillEditCmd   `cmd:"" help:"Edit an existing skill."`
	Delete SkillDeleteCmd `cmd:"" help:"Delete a skill. Its completion history is kept until pruned."`
}

type SkillAddCmd struct {
	Name        string `arg:"" help:"Skill name."`
	Category    string `help:"Category id or name." default:"personalDevelopment"`
	Description string `help:"What doing the task means."`
	Frequency   string `help:"daily, weekly, monthly or open-ended." default:"daily"`
	TimeFrame   string `help:"Scheduling window." enum:"open-ended,recurring,fixed" default:"open-ended" name:"timeframe"`
	Start       string `help:"Start date (YYYY-MM-DD, default: today)."`
	End         string `help:"End date (YYYY-MM-DD). For fixed time frames this is required."`
	Rollover    bool   `help:"Allow carrying the task over to the next day."`
	DailyGoal   string `help:"Optional daily goal."`
	WeeklyGoal  string `help:"Optional weekly goal."`
}

func (c *SkillAddCmd) Run(ctx *Context) error {
	category, ok := ctx.Tracker.FindCategory(c.Category)
	if !ok {
		return fmt.Errorf("category %q not found", c.Category)
	}
	freq, err := models.ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}
	start, err := ctx.parseDate(c.Start)
	if err != nil {
		return err
	}

	skill := models.NewSkill(c.Name, category, c.Description, start)
	skill.Frequency = freq
	skill.AllowsRollover = c.Rollover
	skill.TrackingMetrics = models.TrackingMetrics{DailyGoal: c.DailyGoal, WeeklyGoal: c.WeeklyGoal}

	switch c.TimeFrame {
	case "fixed":
		if c.End == "" {
			return fmt.Errorf("--end is required for a fixed time frame")
		}
		end, err := ctx.parseDate(c.End)
		if err != nil {
			return err
		}
		skill.TimeFrame = models.FixedTimeFrame(start, end)
	case "recurring":
		skill.TimeFrame = models.RecurringTimeFrame(freq)
	}
	if c.End != "" && c.TimeFrame != "fixed" {
		end, err := ctx.parseDate(c.End)
		if err != nil {
			return err
		}
		skill.EndDate = &end
	}

	added, err := ctx.Tracker.AddSkill(skill)
	if err != nil {
		return err
	}
	ctx.printf("Added skill: %s (%s)\n", added.Name, shortID(added.ID))
	return nil
}

type SkillListCmd struct {
	Archived bool `help:"Show only archived skills."`
	All      bool `help:"Show active and archived skills."`
}

func (c *SkillListCmd) Run(ctx *Context) error {
	today := ctx.Tracker.Today()
	var skills []models.Skill
	switch {
	case c.All:
		skills = ctx.Tracker.Skills()
	case c.Archived:
		skills = ctx.Tracker.ArchivedSkills()
	default:
		skills = ctx.Tracker.ActiveSkills(today)
	}

	if len(skills) == 0 {
		ctx.println("No skills found.")
		return nil
	}

	for _, s := range skills {
		status := ""
		if s.IsArchived(today) {
			status = warningStyle.Render(" [ARCHIVED]")
		}
		rollover := ""
		if s.AllowsRollover {
			rollover = mutedStyle.Render(" ↻")
		}
		ctx.printf("%s  %s%s%s\n", mutedStyle.Render(shortID(s.ID)), titleStyle.Render(s.Name), rollover, status)
		ctx.printf("          %s · %s · %s\n", s.Category.Name, s.Frequency, s.TimeFrame)
		if s.TaskDescription != "" {
			ctx.printf("          %s\n", mutedStyle.Render(s.TaskDescription))
		}
	}
	return nil
}

type SkillEditCmd struct {
	Skill       string `arg:"" help:"Skill name or id."`
	Name        string `help:"New name."`
	Category    string `help:"New category id or name."`
	Description string `help:"New task description."`
	Frequency   string `help:"New frequency."`
	End         string `help:"New end date (YYYY-MM-DD), or 'none' to clear it."`
	Rollover    string `help:"Allow rollover (on or off)."`
	DailyGoal   string `help:"New daily goal."`
	WeeklyGoal  string `help:"New weekly goal."`
}

func (c *SkillEditCmd) Run(ctx *Context) error {
	skill, err := ctx.Tracker.FindSkill(c.Skill)
	if err != nil {
		return err
	}

	if c.Name != "" {
		skill.Name = c.Name
	}
	if c.Category != "" {
		category, ok := ctx.Tracker.FindCategory(c.Category)
		if !ok {
			return fmt.Errorf("category %q not found", c.Category)
		}
		skill.Category = category
	}
	if c.Description != "" {
		skill.TaskDescription = c.Description
	}
	if c.Frequency != "" {
		freq, err := models.ParseFrequency(c.Frequency)
		if err != nil {
			return err
		}
		skill.Frequency = freq
		if skill.TimeFrame.Kind == models.TimeFrameRecurring {
			skill.TimeFrame.Frequency = freq
		}
	}
	switch strings.ToLower(c.End) {
	case "":
	case "none":
		skill.EndDate = nil
	default:
		end, err := ctx.parseDate(c.End)
		if err != nil {
			return err
		}
		skill.EndDate = &end
	}
	switch c.Rollover {
	case "on":
		skill.AllowsRollover = true
	case "off":
		skill.AllowsRollover = false
	case "":
	default:
		return fmt.Errorf("invalid --rollover value %q (expected on or off)", c.Rollover)
	}
	if c.DailyGoal != "" {
		skill.TrackingMetrics.DailyGoal = c.DailyGoal
	}
	if c.WeeklyGoal != "" {
		skill.TrackingMetrics.WeeklyGoal = c.WeeklyGoal
	}

	if err := ctx.Tracker.UpdateSkill(skill); err != nil {
		return err
	}
	ctx.printf("Updated skill: %s\n", skill.Name)
	return nil
}

type SkillDeleteCmd struct {
	Skill string `arg:"" help:"Skill name or id."`
}

func (c *SkillDeleteCmd) Run(ctx *Context) error {
	skill, err := ctx.Tracker.FindSkill(c.Skill)
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	if err := ctx.Tracker.DeleteSkill(skill.ID); err != nil {
		return err
	}
	ctx.printf("Deleted skill: %s\n", skill.Name)
	ctx.println(mutedStyle.Render("Completion history is kept. Run 'skilltrack prune' to remove it."))
	return nil
}
