package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_CreatesLogDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	if err := Init(Config{DataDir: dataDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if _, err := os.Stat(filepath.Join(dataDir, "logs")); os.IsNotExist(err) {
		t.Errorf("Log directory was not created")
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Warn("Test warning message")
	if want := filepath.Join(dataDir, "logs", "skilltrack.log"); Path() != want {
		t.Errorf("Path() = %q, want %q", Path(), want)
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Output: &buf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if Path() != "" {
		t.Errorf("Path() = %q, want empty for a custom writer", Path())
	}

	Info("hidden info")
	Warn("visible warning", "key", "skilltrack.skills")

	out := buf.String()
	if strings.Contains(out, "hidden info") {
		t.Errorf("info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "visible warning") || !strings.Contains(out, "skilltrack.skills") {
		t.Errorf("warning missing from output: %q", out)
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// Must not panic.
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}
