package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/skilltrack/internal/models"
	"github.com/julianstephens/skilltrack/internal/progress"
)

type ProgressCmd struct {
	Skill string `arg:"" optional:"" help:"Skill name or id (default: all skills)."`
}

func (c *ProgressCmd) Run(ctx *Context) error {
	if c.Skill != "" {
		skill, err := ctx.Tracker.FindSkill(c.Skill)
		if err != nil {
			return err
		}
		p := ctx.Tracker.GetProgress(skill.ID)
		if p == nil {
			return fmt.Errorf("no progress for %s", skill.Name)
		}
		printProgress(ctx, *p)
		return nil
	}

	all := ctx.Tracker.GetAllProgress()
	if len(all) == 0 {
		ctx.println("No skills found.")
		return nil
	}
	for _, p := range all {
		printProgress(ctx, p)
	}
	return nil
}

func printProgress(ctx *Context, p models.SkillProgress) {
	ctx.println(titleStyle.Render(p.SkillName))
	ctx.printf("  %s %d days\n", labelStyle.Render("Current streak"), p.CurrentStreak)
	ctx.printf("  %s %d days\n", labelStyle.Render("Longest streak"), p.LongestStreak)
	ctx.printf("  %s %.0f%% of %d days\n", labelStyle.Render("Completion"), p.CompletionPercentage, len(p.Completions))
}

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	d := ctx.Tracker.Dashboard()

	ctx.println(titleStyle.Render("Dashboard"))
	streak := fmt.Sprintf("%d days", d.BestCurrentStreak)
	if d.BestStreakSkill != "" {
		streak += " (" + d.BestStreakSkill + ")"
	}
	ctx.printf("  %s %s\n", labelStyle.Render("Best current streak"), streak)
	ctx.printf("  %s %d/%d (%.0f%%)\n", labelStyle.Render("Done today"), d.TasksDoneToday, d.TotalSkills, d.TodayPercentage)
	ctx.printf("  %s %d\n", labelStyle.Render("Mastered skills"), d.MasteredSkills)

	if latest, ok := ctx.Tracker.LatestWeight(); ok {
		ctx.printf("  %s %.1f kg\n", labelStyle.Render("Latest weight"), latest.Weight)
	}
	return nil
}

type HeatmapCmd struct {
	Skill  string `arg:"" help:"Skill name or id."`
	Window string `help:"Span to show." enum:"week,month,year" default:"week"`
}

func (c *HeatmapCmd) Run(ctx *Context) error {
	skill, err := ctx.Tracker.FindSkill(c.Skill)
	if err != nil {
		return err
	}
	window, err := progress.ParseWindow(c.Window)
	if err != nil {
		return err
	}
	cells, err := ctx.Tracker.HeatMap(skill.ID, window)
	if err != nil {
		return err
	}

	ctx.println(titleStyle.Render(fmt.Sprintf("%s · %s", skill.Name, window)))
	switch window {
	case progress.WindowWeek:
		var days, marks []string
		for _, cell := range cells {
			days = append(days, cell.Day.Format("Mon")[:2])
			marks = append(marks, " "+cellMark(cell.Level, cell.InRange, cell.Future))
		}
		ctx.println(mutedStyle.Render(strings.Join(days, " ")))
		ctx.println(strings.Join(marks, "  "))

	case progress.WindowMonth:
		ctx.println(mutedStyle.Render("Mo Tu We Th Fr Sa Su"))
		for row := 0; row*7 < len(cells); row++ {
			var marks []string
			for _, cell := range cells[row*7 : row*7+7] {
				marks = append(marks, " "+cellMark(cell.Level, cell.InRange, cell.Future))
			}
			ctx.println(strings.Join(marks, " "))
		}

	case progress.WindowYear:
		for _, cell := range cells {
			bar := strings.Repeat("█", int(cell.Intensity/10))
			ctx.printf("  %s %s %.0f%%\n", cell.Day.Format("Jan 2006"), fullStyle.Render(fmt.Sprintf("%-10s", bar)), cell.Intensity)
		}
	}
	return nil
}
