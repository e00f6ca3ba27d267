// Package config resolves where skilltrack keeps its data and how it behaves, from an
// optional YAML file, environment variables and command-line flags, in rising order of
// precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/skilltrack/internal/calendar"
	"github.com/julianstephens/skilltrack/internal/constants"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"

	// MemoryPath keeps everything in process, nothing is written to disk.
	MemoryPath = ":memory:"
)

type Config struct {
	DataPath   string `yaml:"data"`
	Timezone   string `yaml:"timezone"`
	Debug      bool   `yaml:"debug"`
	Backend    string `yaml:"backend"`
	AutoBackup bool   `yaml:"auto_backup"`
}

func Default() Config {
	return Config{
		DataPath:   filepath.Join(xdg.DataHome, constants.AppName, constants.DefaultDBFileName),
		Timezone:   "Local",
		Backend:    BackendSQLite,
		AutoBackup: true,
	}
}

// DefaultPath is the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName, constants.ConfigFileName)
}

// Load reads path over the defaults, then applies environment overrides. A missing
// file is not an error; unknown keys are.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv(constants.EnvDataPath); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv(constants.EnvTimezone); v != "" {
		cfg.Timezone = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Backend != BackendSQLite && c.Backend != BackendPostgres {
		return fmt.Errorf("unknown backend %q (expected %s or %s)", c.Backend, BackendSQLite, BackendPostgres)
	}
	if !calendar.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone %q", c.Timezone)
	}
	if c.Backend == BackendSQLite && c.DataPath == "" {
		return errors.New("data path cannot be empty")
	}
	return nil
}

// Save writes c as YAML, creating parent directories.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// DataDir holds logs and backups. For in-memory or PostgreSQL storage it falls back to
// the XDG data home.
func (c Config) DataDir() string {
	if c.Backend == BackendPostgres || c.DataPath == MemoryPath {
		return filepath.Join(xdg.DataHome, constants.AppName)
	}
	return filepath.Dir(c.DataPath)
}

func (c Config) InMemory() bool {
	return c.Backend == BackendSQLite && c.DataPath == MemoryPath
}
