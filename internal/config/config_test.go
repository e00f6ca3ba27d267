package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/skilltrack/internal/constants"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		body    *string
		env     map[string]string
		want    func(Config) Config
		wantErr bool
	}{
		{
			name: "missing file uses defaults",
			want: func(c Config) Config { return c },
		},
		{
			name: "empty file uses defaults",
			body: ptr(""),
			want: func(c Config) Config { return c },
		},
		{
			name: "file values",
			body: ptr("data: /tmp/st.db\ntimezone: Europe/Berlin\ndebug: true\nauto_backup: false\n"),
			want: func(c Config) Config {
				c.DataPath = "/tmp/st.db"
				c.Timezone = "Europe/Berlin"
				c.Debug = true
				c.AutoBackup = false
				return c
			},
		},
		{
			name: "env overrides file",
			body: ptr("timezone: Europe/Berlin\n"),
			env:  map[string]string{constants.EnvTimezone: "America/New_York", constants.EnvDataPath: ":memory:"},
			want: func(c Config) Config {
				c.Timezone = "America/New_York"
				c.DataPath = ":memory:"
				return c
			},
		},
		{name: "unknown key", body: ptr("colour: blue\n"), wantErr: true},
		{name: "bad backend", body: ptr("backend: mongo\n"), wantErr: true},
		{name: "bad timezone", body: ptr("timezone: Mars/Olympus\n"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(constants.EnvTimezone, "")
			t.Setenv(constants.EnvDataPath, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "absent.yaml")
			if tt.body != nil {
				path = writeConfig(t, *tt.body)
			}

			got, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want(Default()), got)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv(constants.EnvTimezone, "")
	t.Setenv(constants.EnvDataPath, "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Timezone = "UTC"
	cfg.Backend = BackendPostgres

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDataDir(t *testing.T) {
	cfg := Default()
	cfg.DataPath = "/var/lib/skilltrack/data.db"
	assert.Equal(t, "/var/lib/skilltrack", cfg.DataDir())
	assert.False(t, cfg.InMemory())

	cfg.DataPath = MemoryPath
	assert.True(t, cfg.InMemory())
	assert.NotEqual(t, ".", cfg.DataDir())
}

func ptr(s string) *string { return &s }
