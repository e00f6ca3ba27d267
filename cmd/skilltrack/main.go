package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/skilltrack/internal/backup"
	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/cli"
	"github.com/julianstephens/skilltrack/internal/config"
	"github.com/julianstephens/skilltrack/internal/constants"
	apperrors "github.com/julianstephens/skilltrack/internal/errors"
	"github.com/julianstephens/skilltrack/internal/keyring"
	"github.com/julianstephens/skilltrack/internal/logger"
	"github.com/julianstephens/skilltrack/internal/storage"
	"github.com/julianstephens/skilltrack/internal/storage/postgres"
	"github.com/julianstephens/skilltrack/internal/storage/sqlite"
	"github.com/julianstephens/skilltrack/internal/tracker"
)

func main() {
	var root cli.Root
	ctx := kong.Parse(&root,
		kong.Name(constants.AppName),
		kong.Description("Skill and habit completion tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := loadConfig(&root)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	clock, err := calendar.NewSystemClock(cfg.Timezone)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{Config: cfg, Clock: clock}

	// Keyring commands manage the credentials needed to open storage, so they run without it.
	command := ctx.Command()
	if !strings.HasPrefix(command, "keyring") {
		store, err := openStore(cfg)
		if err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()

		isInit := strings.HasPrefix(command, "init")
		if !isInit && !cfg.InMemory() {
			if err := store.Load(); err != nil {
				store.Close()
				apperrors.Fatal(err)
			}
		}

		tr := tracker.New(store, clock)
		if !isInit {
			tr.Load()
			if cfg.InMemory() {
				tr.SeedDefaults()
			}
		}

		appCtx.Store = store
		appCtx.Tracker = tr
		appCtx.Backups = backup.NewManager(cfg.DataDir(), tr, clock)
		logger.Debug("Storage ready", "backend", cfg.Backend, "path", store.GetConfigPath(), "command", command)
	}

	runErr := ctx.Run(appCtx)
	if appCtx.Tracker != nil {
		if err := appCtx.Tracker.Flush(); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("failed to save changes: %w", err))
		}
	}
	if runErr != nil {
		if appCtx.Store != nil {
			appCtx.Store.Close()
		}
		apperrors.Fatal(runErr)
	}
}

// loadConfig reads the config file and applies the global flags over it.
func loadConfig(root *cli.Root) (config.Config, error) {
	path := root.Config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if root.Data != "" {
		cfg.DataPath = root.Data
	}
	if root.Timezone != "" {
		cfg.Timezone = root.Timezone
	}
	if root.Backend != "" {
		cfg.Backend = root.Backend
	}
	cfg.Debug = cfg.Debug || root.Debug

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openStore(cfg config.Config) (storage.Provider, error) {
	switch {
	case cfg.InMemory():
		return storage.NewMemoryStore(), nil
	case cfg.Backend == config.BackendPostgres:
		connStr, err := postgresConnString()
		if err != nil {
			return nil, err
		}
		return postgres.New(connStr), nil
	default:
		return sqlite.NewStore(cfg.DataPath), nil
	}
}

// postgresConnString resolves the connection string. Only the keyring may hold one
// with an embedded password.
func postgresConnString() (string, error) {
	connStr, source, err := keyring.ResolveConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("no PostgreSQL connection string: set %s or run 'skilltrack keyring set'", constants.EnvDBConnection)
	}
	if err != nil {
		return "", err
	}

	err = postgres.ValidateConnString(connStr)
	switch {
	case errors.Is(err, postgres.ErrEmbeddedCredentials) && source == keyring.SourceEnv:
		return "", fmt.Errorf("%s must not embed a password; use .pgpass or 'skilltrack keyring set'", constants.EnvDBConnection)
	case errors.Is(err, postgres.ErrEmbeddedCredentials):
	case err != nil:
		return "", err
	}
	logger.Debug("Using PostgreSQL connection string", "source", source)
	return connStr, nil
}
