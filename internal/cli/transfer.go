package cli

import (
	"fmt"
	"os"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	data, err := ctx.Tracker.ExportSnapshot()
	if err != nil {
		return err
	}
	if c.Output == "" {
		_, err := ctx.out().Write(data)
		return err
	}
	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	ctx.printf("Exported to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Exported JSON document." type:"existingfile"`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	if !c.Yes {
		ok, err := ctx.confirm("Replace all data?", "Every skill, completion, habit, moment and weight entry will be replaced by the contents of "+c.File+".")
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Import cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Tracker.ImportSnapshot(data); err != nil {
		return fmt.Errorf("import failed, nothing was changed: %w", err)
	}
	ctx.println(successStyle.Render("✓ Import complete"))
	return nil
}

type PruneCmd struct{}

func (c *PruneCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()
	removed := ctx.Tracker.PruneOrphanedCompletions()
	ctx.printf("Removed %d completion records of deleted skills\n", removed)
	return nil
}
