// Package kv implements the durable key-value store backing the todo
// engine: one JSON document per key, stored as a file in a data directory.
//
// Writes go to a temp file and are renamed into place, so a slot is never
// observed half-written. An exclusive flock on a sibling lock file guards
// each slot, though the application itself never runs concurrent writers.
package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"syscall"
)

var validKey = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Store holds JSON slots under a single directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) slotPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) lockPath(key string) string {
	return filepath.Join(s.dir, key+".lock")
}

// Get reads the slot for key. Returns (nil, nil) when the slot has never
// been written.
func (s *Store) Get(key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.slotPath(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return data, nil
}

// Set overwrites the slot for key atomically.
func (s *Store) Set(key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	return s.withLock(key, func() error {
		tmpFile, err := os.CreateTemp(s.dir, key+".json.tmp")
		if err != nil {
			return fmt.Errorf("create temp slot file: %w", err)
		}
		name := tmpFile.Name()
		_, err = tmpFile.Write(data)
		if closeErr := tmpFile.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(name)
			return fmt.Errorf("write temp slot file: %w", err)
		}

		if err := os.Rename(name, s.slotPath(key)); err != nil {
			os.Remove(name)
			return fmt.Errorf("rename slot file: %w", err)
		}
		return nil
	})
}

// withLock executes fn while holding an exclusive lock on the key's lock
// file.
func (s *Store) withLock(key string, fn func() error) error {
	lockFile, err := os.OpenFile(s.lockPath(key), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid slot key %q", key)
	}
	return nil
}
