package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitkit/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "habitkit.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetRemove(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.Get("habit_tracker_habits"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	if err := store.Set("habit_tracker_habits", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set("habit_tracker_habits", []byte(`[{"id":"h1"}]`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	got, err := store.Get("habit_tracker_habits")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[{"id":"h1"}]` {
		t.Errorf("Get() = %s", got)
	}

	if err := store.Remove("habit_tracker_habits"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := store.Get("habit_tracker_habits"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get() after Remove error = %v, want ErrNotFound", err)
	}
	// Removing an absent key is not an error.
	if err := store.Remove("habit_tracker_habits"); err != nil {
		t.Errorf("Remove() of absent key error = %v", err)
	}
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.Set("habit_tracker_completions", []byte(`[1]`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("habit_tracker_completions")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[1]` {
		t.Errorf("Get() = %s, want [1]", got)
	}
	if err := reopened.Ping(); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
	if err := store.Set("k", []byte(`1`)); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Set() error = %v, want ErrNotInitialized", err)
	}
}
