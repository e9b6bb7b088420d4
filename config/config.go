// Package config loads the minic.toml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the project configuration file looked up per directory.
const FileName = "minic.toml"

// Config is the project-level configuration.
type Config struct {
	Entry    string      `toml:"entry"`
	LogLevel string      `toml:"log_level"`
	Fmt      FmtConfig   `toml:"fmt"`
	Watch    WatchConfig `toml:"watch"`
}

// FmtConfig controls the fmt command's output.
type FmtConfig struct {
	// Annotate adds "(type)" annotations to resolved identifier uses.
	Annotate bool `toml:"annotate"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	DebounceMS int `toml:"debounce_ms"`
}

// Default returns the configuration used when no minic.toml exists.
func Default() *Config {
	return &Config{
		Entry:    "main.mc",
		LogLevel: "warning",
		Fmt:      FmtConfig{Annotate: true},
		Watch:    WatchConfig{DebounceMS: 250},
	}
}

// Load reads dir/minic.toml. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return cfg, nil
}

// FindProjectRoot walks upward from startDir looking for minic.toml.
func FindProjectRoot(startDir string) (string, error) {
	current := startDir
	for {
		if _, err := os.Stat(filepath.Join(current, FileName)); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", fmt.Errorf("project root not found (no %s found)", FileName)
}
