// ABOUTME: Contract tests shared by every Store backend.
// ABOUTME: Runs get/set/delete/keys against SQLite, Badger and memory.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "fitdash.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func setupTestBadger(t *testing.T) *Badger {
	t.Helper()
	b, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func backends(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": setupTestDB(t),
		"badger": setupTestBadger(t),
	}
}

func TestStoreGetMissing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("nope")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Get missing key err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreSetGetReplace(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set("xp_total", []byte("10")); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Set("xp_total", []byte("35")); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			got, err := s.Get("xp_total")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if string(got) != "35" {
				t.Errorf("Get = %q, want %q", got, "35")
			}
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set("foodlog_2024-01-01", []byte("[]")); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Delete("foodlog_2024-01-01"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if _, err := s.Get("foodlog_2024-01-01"); !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound after delete, got %v", err)
			}
			if err := s.Delete("never_written"); err != nil {
				t.Errorf("Delete of absent key should succeed, got %v", err)
			}
		})
	}
}

func TestStoreKeysByPrefix(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{
				"exercises_2024-01-03",
				"exercises_2024-01-01",
				"ex_target_2024-01-01",
				"exercisesX2024-01-02",
				"sleep_map",
			} {
				if err := s.Set(k, []byte("[]")); err != nil {
					t.Fatalf("Set %s failed: %v", k, err)
				}
			}

			got, err := s.Keys("exercises_")
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			want := []string{"exercises_2024-01-01", "exercises_2024-01-03"}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Keys = %v, want %v", got, want)
			}
		})
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "nested", "fitdash.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("expected directory to be created")
	}
	if db.Path() != dbPath {
		t.Errorf("Path() = %s, want %s", db.Path(), dbPath)
	}
}

func TestDefaultDBPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	expected := filepath.Join(tmpDir, "fitdash", "fitdash.db")
	if got := DBPath(DataDir()); got != expected {
		t.Errorf("DBPath(DataDir()) = %s, want %s", got, expected)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fitdash.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.Set("theme", []byte("light")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	_ = db.Close()

	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db.Close()

	got, err := db.Get("theme")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "light" {
		t.Errorf("Get = %q, want light", got)
	}
}
