// ABOUTME: Key-value store contract for fitdash data.
// ABOUTME: Backends: SQLite (default), Badger, Charm KV and in-memory.
package storage

import (
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a durable mapping from string keys to opaque values.
// Every Set replaces the whole value; there are no partial writes
// and no transactions spanning several keys.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys returns all keys with the given prefix in ascending order.
	Keys(prefix string) ([]string, error)

	// Lifecycle
	Close() error
}
