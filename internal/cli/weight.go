package cli

import (
	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/models"
)

type WeightCmd struct {
	Record  WeightRecordCmd  `cmd:"" help:"Record a weight for a day (replaces that day's entry)."`
	Show    WeightShowCmd    `cmd:"" help:"Show the weight log." default:"1"`
	Cleanup WeightCleanupCmd `cmd:"" help:"Drop old and implausible entries."`
	Trend   WeightTrendCmd   `cmd:"" help:"Show the change over the last week."`
}

type WeightRecordCmd struct {
	Kg   float64 `arg:"" help:"Weight in kilograms."`
	Date string  `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *WeightRecordCmd) Run(ctx *Context) error {
	day, err := ctx.parseDate(c.Date)
	if err != nil {
		return err
	}
	entry, err := ctx.Tracker.RecordWeight(c.Kg, day)
	if err != nil {
		return err
	}
	ctx.printf("Recorded %.1f kg for %s\n", entry.Weight, calendar.FormatDay(entry.Date))
	if !models.WeightInRange(entry.Weight) {
		ctx.println(warningStyle.Render("⚠ Outside the plausible range; 'weight cleanup' will remove it"))
	}
	return nil
}

type WeightShowCmd struct {
	Limit int `help:"Number of most recent entries to show (0 for all)." default:"14"`
}

func (c *WeightShowCmd) Run(ctx *Context) error {
	entries := ctx.Tracker.WeightEntries()
	if len(entries) == 0 {
		ctx.println("No weight entries.")
		return nil
	}
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[len(entries)-c.Limit:]
	}
	for _, e := range entries {
		ctx.printf("  %s  %6.1f kg\n", mutedStyle.Render(calendar.FormatDay(e.Date)), e.Weight)
	}
	return nil
}

type WeightCleanupCmd struct{}

func (c *WeightCleanupCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	removed := ctx.Tracker.CleanupWeights()
	ctx.printf("Removed %d entries (keeping %d years, %.0f-%.0f kg)\n",
		removed, constants.WeightRetentionAge, constants.MinWeightKg, constants.MaxWeightKg)
	return nil
}

type WeightTrendCmd struct{}

func (c *WeightTrendCmd) Run(ctx *Context) error {
	diff, ok := ctx.Tracker.WeightTrend()
	if !ok {
		ctx.println("Not enough entries in the last week to show a trend.")
		return nil
	}
	arrow := "→"
	switch {
	case diff > 0:
		arrow = "↑"
	case diff < 0:
		arrow = "↓"
	}
	ctx.printf("%s %+.1f kg over the last %d days\n", arrow, diff, constants.WeightTrendWindow)
	return nil
}
