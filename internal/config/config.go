// Package config handles loading the todolist config.toml file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/todolist/internal/paths"
	"github.com/amonks/todolist/todo"
)

// EnvDataDir overrides the data directory when set. It takes precedence
// over the config file.
const EnvDataDir = "TODOLIST_DATA_DIR"

// Config represents the config.toml configuration file.
type Config struct {
	// DataDir is the directory holding the durable slots.
	DataDir string `toml:"data-dir"`

	// FallbackCategory adopts todos orphaned by category deletion.
	FallbackCategory string `toml:"fallback-category"`
}

// Load reads the global config file and applies defaults and environment
// overrides. Returns a fully resolved config even when no file exists.
func Load() (*Config, error) {
	path, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	if dir := strings.TrimSpace(os.Getenv(EnvDataDir)); dir != "" {
		cfg.DataDir = dir
	}
	if cfg.DataDir == "" {
		dir, err := paths.DefaultDataDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}
	if cfg.FallbackCategory == "" {
		cfg.FallbackCategory = todo.DefaultFallbackCategory
	}

	return cfg, nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.DataDir = strings.TrimSpace(cfg.DataDir)
	cfg.FallbackCategory = strings.TrimSpace(cfg.FallbackCategory)
	return &cfg, nil
}
