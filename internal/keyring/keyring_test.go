package keyring

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/skilltrack/internal/constants"
)

func TestConnectionStringLifecycle(t *testing.T) {
	keyring.MockInit()

	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetConnectionString() on empty keyring = %v, want ErrNotFound", err)
	}

	const connStr = "postgres://tracker@localhost:5432/skilltrack?sslmode=disable"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString failed: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString failed: %v", err)
	}
	if got != connStr {
		t.Errorf("GetConnectionString() = %q, want %q", got, connStr)
	}

	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring")
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString failed: %v", err)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteConnectionString() = %v, want ErrNotFound", err)
	}
}

func TestSetConnectionString_Empty(t *testing.T) {
	keyring.MockInit()
	if err := SetConnectionString(""); err == nil {
		t.Error("expected error for empty connection string")
	}
}

func TestResolveConnectionString(t *testing.T) {
	keyring.MockInit()
	t.Setenv(constants.EnvDBConnection, "")

	if _, source, err := ResolveConnectionString(); !errors.Is(err, ErrNotFound) || source != SourceKeyring {
		t.Fatalf("ResolveConnectionString() = %q, %v, want keyring ErrNotFound", source, err)
	}

	const stored = "postgres://tracker@db/skilltrack"
	if err := SetConnectionString(stored); err != nil {
		t.Fatalf("SetConnectionString failed: %v", err)
	}
	got, source, err := ResolveConnectionString()
	if err != nil || got != stored || source != SourceKeyring {
		t.Errorf("ResolveConnectionString() = %q, %q, %v, want %q from keyring", got, source, err, stored)
	}

	const fromEnv = "host=localhost dbname=skilltrack"
	t.Setenv(constants.EnvDBConnection, fromEnv)
	got, source, err = ResolveConnectionString()
	if err != nil || got != fromEnv || source != SourceEnv {
		t.Errorf("ResolveConnectionString() = %q, %q, %v, want %q from environment", got, source, err, fromEnv)
	}
}
