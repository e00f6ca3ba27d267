package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/config"
	"github.com/julianstephens/skilltrack/internal/constants"
	"github.com/julianstephens/skilltrack/internal/keyring"
	"github.com/julianstephens/skilltrack/internal/logger"
	"github.com/julianstephens/skilltrack/internal/snapshot"
	"github.com/julianstephens/skilltrack/internal/storage"
)

type DoctorCmd struct{}

type checkResult int

const (
	checkOK checkResult = iota
	checkWarn
	checkFail
	checkSkipped
)

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	report := func(name string, result checkResult, detail string) {
		switch result {
		case checkOK:
			ctx.printf("%s %s: OK\n", successStyle.Render("✓"), name)
		case checkWarn:
			ctx.printf("%s %s: WARNING\n", warningStyle.Render("⚠"), name)
		case checkFail:
			ctx.printf("❌ %s: FAIL\n", name)
			hasError = true
		case checkSkipped:
			ctx.printf("⊘ %s: SKIPPED\n", name)
		}
		if detail != "" {
			ctx.printf("   %s\n", detail)
		}
	}

	keys, err := ctx.Store.Keys()
	storeOK := err == nil
	if storeOK {
		report("Storage reachable", checkOK, fmt.Sprintf("%s (%d keys)", ctx.Store.GetConfigPath(), len(keys)))
	} else {
		report("Storage reachable", checkFail, err.Error())
	}

	if storeOK {
		if bad := checkStoredKeys(ctx); len(bad) > 0 {
			report("Stored data readable", checkFail, errors.Join(bad...).Error())
		} else {
			report("Stored data readable", checkOK, "")
		}
	} else {
		report("Stored data readable", checkSkipped, "")
	}

	if n := ctx.Tracker.OrphanedCompletions(); n > 0 {
		report("Completion history", checkWarn, fmt.Sprintf("%d records belong to deleted skills; run 'skilltrack prune'", n))
	} else {
		report("Completion history", checkOK, "")
	}

	if ctx.Backups != nil {
		backups, err := ctx.Backups.ListBackups()
		switch {
		case err != nil:
			report("Backups present", checkWarn, err.Error())
		case len(backups) == 0:
			report("Backups present", checkWarn, "no backups in "+ctx.Backups.Dir())
		default:
			report("Backups present", checkOK, "latest: "+backups[0].Timestamp.Format("2006-01-02 15:04"))
		}
	}

	if tz := ctx.Config.Timezone; tz != "" && !calendar.ValidateTimezone(tz) {
		report("Timezone", checkFail, fmt.Sprintf("%q is not a valid IANA timezone", tz))
	} else {
		report("Timezone", checkOK, ctx.Tracker.Today().Location().String())
	}

	if path := logger.Path(); path != "" {
		if _, err := os.Stat(path); err != nil && !os.IsNotExist(err) {
			report("Log file", checkWarn, err.Error())
		} else {
			report("Log file", checkOK, path)
		}
	}

	if ctx.Config.Backend == config.BackendPostgres {
		if keyring.IsAvailable() {
			report("OS keyring", checkOK, "")
		} else {
			report("OS keyring", checkWarn, "unavailable; set "+constants.EnvDBConnection+" instead")
		}
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.println("All diagnostics passed!")
	return nil
}

// checkStoredKeys decodes every persisted key into a scratch state.
func checkStoredKeys(ctx *Context) []error {
	codec := snapshot.NewCodec(ctx.Tracker.Today().Location())
	var bad []error
	for _, key := range constants.AllKeys {
		data, err := ctx.Store.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err == nil {
			err = codec.Decode(key, data, snapshot.NewState())
		}
		if err != nil {
			bad = append(bad, err)
		}
	}
	return bad
}
