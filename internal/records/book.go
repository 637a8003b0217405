// ABOUTME: Day-keyed record store over a storage.Store.
// ABOUTME: Whole-value read/transform/write with absent-on-decode-failure reads.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/harperreed/fitdash/internal/storage"
	log "github.com/sirupsen/logrus"
)

// Book is the record store. Individual reads and writes go straight to
// the underlying Store; read-modify-write sequences must run inside Update.
type Book struct {
	store storage.Store
	mu    sync.Mutex
}

// New wraps store and records the schema version if none is present.
func New(store storage.Store) *Book {
	b := &Book{store: store}
	if _, ok := b.getText(KeySchemaVersion); !ok {
		if err := b.store.Set(KeySchemaVersion, []byte(strconv.Itoa(SchemaVersion))); err != nil {
			log.WithError(err).Warn("records: could not write schema version")
		}
	}
	return b
}

// Store exposes the underlying key-value store.
func (b *Book) Store() storage.Store {
	return b.store
}

// Update runs fn while holding the book's write lock, serializing
// read-modify-write sequences from concurrent callers.
func (b *Book) Update(fn func() error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fn()
}

// lookup is the typed result of a read: ok is false when the key is
// absent or its value could not be decoded.
type lookup[T any] struct {
	value T
	ok    bool
}

func (l lookup[T]) or(def T) T {
	if !l.ok {
		return def
	}
	return l.value
}

func (b *Book) raw(key string) ([]byte, bool) {
	data, err := b.store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.WithError(err).WithField("key", key).Debug("records: read failed, treating as absent")
		}
		return nil, false
	}
	return data, true
}

func getJSON[T any](b *Book, key string) lookup[T] {
	data, ok := b.raw(key)
	if !ok {
		return lookup[T]{}
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.WithError(err).WithField("key", key).Debug("records: decode failed, treating as absent")
		return lookup[T]{}
	}
	return lookup[T]{value: v, ok: true}
}

func setJSON(b *Book, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := b.store.Set(key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (b *Book) getText(key string) (string, bool) {
	data, ok := b.raw(key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

func (b *Book) getFloat(key string) lookup[float64] {
	s, ok := b.getText(key)
	if !ok || s == "" {
		return lookup[float64]{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.WithError(err).WithField("key", key).Debug("records: not a number, treating as absent")
		return lookup[float64]{}
	}
	return lookup[float64]{value: v, ok: true}
}

func (b *Book) setText(key, value string) error {
	if err := b.store.Set(key, []byte(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (b *Book) setFloat(key string, v float64) error {
	return b.setText(key, strconv.FormatFloat(v, 'f', -1, 64))
}

func (b *Book) delete(key string) error {
	if err := b.store.Delete(key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
