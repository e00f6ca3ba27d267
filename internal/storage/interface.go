// Package storage defines the key/value boundary the tracker persists through.
package storage

import "errors"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KeyValueStore holds opaque values by string key. A missing key is reported as
// ErrNotFound, never as a nil value with a nil error.
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
}

// Provider is a KeyValueStore with a lifecycle, the shape every backend exposes to
// the CLI.
type Provider interface {
	KeyValueStore

	// Init creates the backing storage and applies migrations.
	Init() error
	// Load opens existing storage and validates its schema.
	Load() error
	Close() error

	// GetConfigPath returns a non-sensitive description of where data lives.
	GetConfigPath() string
}
