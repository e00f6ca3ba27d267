package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/skilltrack/internal/logger"
	"github.com/julianstephens/skilltrack/internal/storage"
	"github.com/julianstephens/skilltrack/internal/storage/sqlite"
)

type InitCmd struct {
	Source string `help:"SQLite database to copy all data from." type:"path"`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized skilltrack storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.printf("Copying data from: %s\n", c.Source)
		src := sqlite.NewStore(c.Source)
		if err := src.Load(); err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer src.Close()
		n, err := copyKeys(src, ctx.Store)
		if err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		ctx.printf("Copied %d keys.\n", n)
	}

	ctx.Tracker.Load()
	if ctx.Tracker.SeedDefaults() {
		ctx.println(successStyle.Render("✓ Seeded default skills and morning routine"))
	}
	return ctx.Tracker.Flush()
}

func copyKeys(src storage.KeyValueStore, dst storage.KeyValueStore) (int, error) {
	keys, err := src.Keys()
	if err != nil {
		return 0, err
	}
	copied := 0
	for _, key := range keys {
		value, err := src.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return copied, fmt.Errorf("read %s: %w", key, err)
		}
		if err := dst.Set(key, value); err != nil {
			return copied, fmt.Errorf("write %s: %w", key, err)
		}
		logger.Debug("Copied key", "key", key, "bytes", len(value))
		copied++
	}
	return copied, nil
}
