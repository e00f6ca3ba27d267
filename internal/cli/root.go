package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/skilltrack/internal/backup"
	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/config"
	"github.com/julianstephens/skilltrack/internal/logger"
	"github.com/julianstephens/skilltrack/internal/storage"
	"github.com/julianstephens/skilltrack/internal/tracker"
)

// Root is the full command tree. Global flags override the config file.
type Root struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"path" env:"SKILLTRACK_CONFIG"`
	Data     string `help:"SQLite database path, or :memory:." placeholder:"PATH"`
	Timezone string `help:"IANA timezone used for calendar days (or Local)."`
	Backend  string `help:"Storage backend (sqlite or postgres)."`
	Debug    bool   `help:"Enable debug logging to stderr."`

	Init      InitCmd      `cmd:"" help:"Initialize skilltrack storage and seed defaults."`
	Today     TodayCmd     `cmd:"" help:"Show today's tasks and routine." default:"1"`
	Done      DoneCmd      `cmd:"" help:"Toggle today's completion of a skill."`
	Mark      MarkCmd      `cmd:"" help:"Set a skill's completion level for a day."`
	Rollover  RolloverCmd  `cmd:"" help:"Carry a skill over to tomorrow."`
	Progress  ProgressCmd  `cmd:"" help:"Show streaks and completion percentage."`
	Dashboard DashboardCmd `cmd:"" help:"Show the overall dashboard."`
	Heatmap   HeatmapCmd   `cmd:"" help:"Show a completion heat map for a skill."`
	Skill     SkillCmd     `cmd:"" help:"Manage skills."`
	Category  CategoryCmd  `cmd:"" help:"Manage skill categories."`
	Routine   RoutineCmd   `cmd:"" help:"Manage the morning routine."`
	Weight    WeightCmd    `cmd:"" help:"Record and review body weight."`
	Moment    MomentCmd    `cmd:"" help:"Record memorable moments."`
	Export    ExportCmd    `cmd:"" help:"Export all data as a JSON document."`
	Import    ImportCmd    `cmd:"" help:"Replace all data with an exported JSON document."`
	Backup    BackupCmd    `cmd:"" help:"Manage backups."`
	Prune     PruneCmd     `cmd:"" help:"Delete completion history of deleted skills."`
	Doctor    DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Keyring   KeyringCmd   `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// Context is handed to every command's Run method.
type Context struct {
	Tracker *tracker.Tracker
	Store   storage.Provider
	Config  config.Config
	Backups *backup.Manager
	Clock   calendar.Clock
	Out     io.Writer

	// Confirm asks a yes/no question. Nil means an interactive huh prompt.
	Confirm func(title, description string) (bool, error)
}

// PerformAutomaticBackup creates a backup before a destructive command. Failures are
// logged and never interrupt the command.
func (c *Context) PerformAutomaticBackup() {
	if !c.Config.AutoBackup || c.Backups == nil {
		return
	}
	if _, err := c.Backups.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

func (c *Context) confirm(title, description string) (bool, error) {
	if c.Confirm != nil {
		return c.Confirm(title, description)
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// parseDate resolves a YYYY-MM-DD argument in the tracker's timezone. Empty means today.
func (c *Context) parseDate(s string) (time.Time, error) {
	today := c.Tracker.Today()
	s = strings.TrimSpace(s)
	if s == "" || s == "today" {
		return today, nil
	}
	if s == "yesterday" {
		return calendar.AddDays(today, -1), nil
	}
	day, err := calendar.ParseDay(s, today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return day, nil
}

func shortID(id fmt.Stringer) string {
	return id.String()[:8]
}
