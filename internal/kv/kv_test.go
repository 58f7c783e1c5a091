package kv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetUnwrittenSlot(t *testing.T) {
	store := NewStore(t.TempDir())

	data, err := store.Get("todos")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Fatalf("Get of unwritten slot = %q, want nil", data)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	want := []byte(`[{"id": "1"}]`)
	if err := store.Set("todos", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get("todos")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("Get = %q, want %q", got, want)
	}
}

func TestSetOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Set("todos", []byte("first")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set("todos", []byte("second")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get("todos")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("Get = %q after overwrite", got)
	}
}

func TestSetCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewStore(dir)

	if err := store.Set("todos", []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "todos.json")); err != nil {
		t.Fatalf("slot file missing: %v", err)
	}
}

func TestSetLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.Set("todos", []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if name != "todos.json" && name != "todos.lock" {
			t.Errorf("unexpected file %q left in data dir", name)
		}
	}
}

func TestInvalidKeys(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, key := range []string{"", "Todos", "../escape", "a b", "1st"} {
		if _, err := store.Get(key); err == nil {
			t.Errorf("Get(%q) accepted an invalid key", key)
		}
		if err := store.Set(key, nil); err == nil {
			t.Errorf("Set(%q) accepted an invalid key", key)
		}
	}
}
