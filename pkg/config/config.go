// Package config loads memtop defaults from a TOML file. CLI flags always
// win over file values; the file only replaces the built-in defaults.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config mirrors the CLI surface.
type Config struct {
	// RuntimeMinutes bounds the observation window; negative means forever.
	RuntimeMinutes int `toml:"runtime_minutes"`

	// RefreshSeconds is the sampling cadence.
	RefreshSeconds int `toml:"refresh_seconds"`

	// MaxLines is the number of processes tracked and printed.
	MaxLines int `toml:"max_lines"`

	// MaxLineLength clips rendered output lines.
	MaxLineLength int `toml:"max_line_length"`

	// WritePath enables snapshot persistence when non-empty; WriteStrftime
	// is an optional time-based suffix pattern appended every round.
	WritePath     string `toml:"write_path"`
	WriteStrftime string `toml:"write_strftime"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		RuntimeMinutes: -1,
		RefreshSeconds: 10,
		MaxLines:       30,
		MaxLineLength:  80,
	}
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/memtop/config.toml
//  2. ~/.config/memtop/config.toml
//
// If no file exists, returns Default().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	return Default(), nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configSearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "memtop", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "memtop", "config.toml"))
	}
	return paths
}
