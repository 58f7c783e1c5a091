package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDir returns the default todolist data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "todolist"), nil
}

// DefaultConfigPath returns the path to the global config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "todolist", "config.toml"), nil
}
