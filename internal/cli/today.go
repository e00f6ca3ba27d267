package cli

import (
	"fmt"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/models"
)

type TodayCmd struct {
	Date string `help:"Day to show (YYYY-MM-DD, default: today)."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	day, err := ctx.parseDate(c.Date)
	if err != nil {
		return err
	}

	ctx.println(titleStyle.Render("Tasks for " + day.Format("Monday, Jan 2 2006")))
	tasks := ctx.Tracker.TasksForDay(day)
	if len(tasks) == 0 {
		ctx.println(mutedStyle.Render("  Nothing scheduled."))
	}
	done := 0
	for _, task := range tasks {
		if task.Level.IsFull() {
			done++
		}
		suffix := ""
		if task.RolledOver {
			suffix = warningStyle.Render(" (rolled over)")
		}
		ctx.printf("  %s %s%s\n", levelMark(task.Level), task.Skill.Name, suffix)
	}
	if len(tasks) > 0 {
		ctx.printf("\nDone: %d/%d\n", done, len(tasks))
	}

	habits := ctx.Tracker.Habits()
	if len(habits) > 0 {
		ctx.println()
		ctx.println(titleStyle.Render("Morning routine"))
		for _, h := range habits {
			ctx.printf("  %s %s\n", levelMark(ctx.Tracker.RoutineLevel(h.ID, day)), h.Name)
		}
	}

	if w, ok := ctx.Tracker.WeightOn(day); ok {
		ctx.printf("\nWeight: %.1f kg\n", w)
	}
	return nil
}

type DoneCmd struct {
	Skill string `arg:"" help:"Skill name or id."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	skill, err := ctx.Tracker.FindSkill(c.Skill)
	if err != nil {
		return err
	}
	level, err := ctx.Tracker.ToggleToday(skill.ID)
	if err != nil {
		return err
	}
	if level.IsFull() {
		ctx.printf("%s %s done for today\n", successStyle.Render("✓"), skill.Name)
	} else {
		ctx.printf("Unmarked %s for today\n", skill.Name)
	}
	return nil
}

type MarkCmd struct {
	Skill string `arg:"" help:"Skill name or id."`
	Level string `arg:"" help:"Completion level." enum:"none,partial,full"`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *MarkCmd) Run(ctx *Context) error {
	skill, err := ctx.Tracker.FindSkill(c.Skill)
	if err != nil {
		return err
	}
	level, err := models.ParseCompletionLevel(c.Level)
	if err != nil {
		return err
	}
	day, err := ctx.parseDate(c.Date)
	if err != nil {
		return err
	}
	if day.After(ctx.Tracker.Today()) {
		return fmt.Errorf("cannot mark %s: date is in the future", calendar.FormatDay(day))
	}
	if _, err := ctx.Tracker.UpsertCompletion(skill.ID, day, level); err != nil {
		return err
	}
	ctx.printf("%s %s on %s\n", levelMark(level), skill.Name, calendar.FormatDay(day))
	return nil
}

type RolloverCmd struct {
	Skill string `arg:"" help:"Skill name or id."`
}

func (c *RolloverCmd) Run(ctx *Context) error {
	skill, err := ctx.Tracker.FindSkill(c.Skill)
	if err != nil {
		return err
	}
	if !skill.AllowsRollover {
		ctx.println(warningStyle.Render(fmt.Sprintf("⚠ %s does not allow rollover; carrying it over anyway", skill.Name)))
	}
	if err := ctx.Tracker.RolloverTask(skill.ID); err != nil {
		return err
	}
	ctx.printf("%s will show up on tomorrow's list\n", skill.Name)
	return nil
}
