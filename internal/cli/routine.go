package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/models"
	"github.com/julianstephens/skilltrack/internal/tracker"
)

type RoutineCmd struct {
	List   RoutineListCmd   `cmd:"" help:"Show the routine with a day's progress." default:"1"`
	Add    RoutineAddCmd    `cmd:"" help:"Append a habit to the routine."`
	Edit   RoutineEditCmd   `cmd:"" help:"Edit a habit."`
	Delete RoutineDeleteCmd `cmd:"" help:"Remove a habit and its history."`
	Move   RoutineMoveCmd   `cmd:"" help:"Move a habit to a new position."`
	Cycle  RoutineCycleCmd  `cmd:"" help:"Advance a habit through none, partial and full."`
	Toggle RoutineToggleCmd `cmd:"" help:"Flip a habit between none and full."`
}

type RoutineListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *RoutineListCmd) Run(ctx *Context) error {
	day, err := ctx.parseDate(c.Date)
	if err != nil {
		return err
	}
	habits := ctx.Tracker.Habits()
	if len(habits) == 0 {
		ctx.println("No habits in the routine.")
		return nil
	}

	ctx.println(titleStyle.Render("Morning routine · " + calendar.FormatDay(day)))
	done := 0
	for i, h := range habits {
		level := ctx.Tracker.RoutineLevel(h.ID, day)
		if level.IsFull() {
			done++
		}
		goal := ""
		if h.Goal != "" {
			goal = mutedStyle.Render(" · " + h.Goal)
		}
		derived := ""
		if h.IsTrackWeight() {
			derived = mutedStyle.Render(" (set by 'weight record')")
		}
		ctx.printf("%2d. %s %s%s%s\n", i+1, levelMark(level), h.Name, goal, derived)
	}
	ctx.printf("\nCompleted: %d/%d\n", done, len(habits))
	return nil
}

type RoutineAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Icon  string `help:"Icon name." default:"checkmark.circle"`
	Color string `help:"Color name." default:"blue"`
	Goal  string `help:"Optional goal, e.g. '10 pages'."`
}

func (c *RoutineAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Tracker.AddHabit(models.MorningHabit{
		Name:  c.Name,
		Icon:  c.Icon,
		Color: c.Color,
		Goal:  c.Goal,
	})
	if err != nil {
		return err
	}
	ctx.printf("Added habit: %s (position %d)\n", habit.Name, habit.Order+1)
	return nil
}

type RoutineEditCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Name  string `help:"New name."`
	Icon  string `help:"New icon."`
	Color string `help:"New color."`
	Goal  string `help:"New goal."`
}

func (c *RoutineEditCmd) Run(ctx *Context) error {
	habit, err := ctx.Tracker.FindHabit(c.Habit)
	if err != nil {
		return err
	}
	if c.Name != "" {
		habit.Name = c.Name
	}
	if c.Icon != "" {
		habit.Icon = c.Icon
	}
	if c.Color != "" {
		habit.Color = c.Color
	}
	if c.Goal != "" {
		habit.Goal = c.Goal
	}
	if err := ctx.Tracker.UpdateHabit(habit); err != nil {
		return err
	}
	ctx.printf("Updated habit: %s\n", habit.Name)
	return nil
}

type RoutineDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *RoutineDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.Tracker.FindHabit(c.Habit)
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	if err := ctx.Tracker.DeleteHabit(habit.ID); err != nil {
		return err
	}
	ctx.printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type RoutineMoveCmd struct {
	Habit    string `arg:"" help:"Habit name or id."`
	Position int    `arg:"" help:"New 1-based position."`
}

func (c *RoutineMoveCmd) Run(ctx *Context) error {
	habit, err := ctx.Tracker.FindHabit(c.Habit)
	if err != nil {
		return err
	}
	if c.Position < 1 {
		return fmt.Errorf("position must be at least 1")
	}
	if err := ctx.Tracker.MoveHabit(habit.ID, c.Position-1); err != nil {
		return err
	}
	for _, h := range ctx.Tracker.Habits() {
		if h.ID == habit.ID {
			ctx.printf("Moved %s to position %d\n", h.Name, h.Order+1)
		}
	}
	return nil
}

type RoutineCycleCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *RoutineCycleCmd) Run(ctx *Context) error {
	return stepHabit(ctx, c.Habit, c.Date, ctx.Tracker.CycleCompletion)
}

type RoutineToggleCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *RoutineToggleCmd) Run(ctx *Context) error {
	return stepHabit(ctx, c.Habit, c.Date, ctx.Tracker.ToggleCompletion)
}

func stepHabit(ctx *Context, ref, date string, step func(uuid.UUID, time.Time) (models.CompletionLevel, error)) error {
	habit, err := ctx.Tracker.FindHabit(ref)
	if err != nil {
		return err
	}
	day, err := ctx.parseDate(date)
	if err != nil {
		return err
	}
	level, err := step(habit.ID, day)
	if errors.Is(err, tracker.ErrDerivedHabit) {
		return fmt.Errorf("%s is completed by recording a weight: skilltrack weight record <kg>", habit.Name)
	}
	if err != nil {
		return err
	}
	ctx.printf("%s %s on %s\n", levelMark(level), habit.Name, calendar.FormatDay(day))
	return nil
}
