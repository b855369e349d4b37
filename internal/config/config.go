// Package config loads the optional converter config file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// FileName is the config file searched for upward from the working
// directory, .gitignore-style.
const FileName = ".ticktick2todoist.yml"

// Sentinel errors.
var (
	ErrNotFound = errors.New("no config file found")
	ErrInvalid  = errors.New("invalid config")
)

// Config holds defaults for conversion runs. Flags always win over
// config values; pointer fields distinguish "unset" from an explicit
// false.
type Config struct {
	// OutputDir is the default directory for generated import files.
	// Relative paths resolve against the config file's directory.
	OutputDir string `yaml:"output_dir,omitempty"`
	// IncludePriority toggles TickTick → Todoist priority mapping.
	IncludePriority *bool `yaml:"include_priority,omitempty"`
	// Color toggles styled console output.
	Color *bool `yaml:"color,omitempty"`

	// path is the absolute location the config was loaded from (not serialized).
	path string `yaml:"-"`
}

// Path returns the absolute location the config was loaded from,
// or "" for a default config.
func (c *Config) Path() string {
	return c.path
}

// Default returns an empty config with every field unset.
func Default() *Config {
	return &Config{}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalid, path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	cfg.path = abs

	if cfg.OutputDir != "" && !filepath.IsAbs(cfg.OutputDir) {
		cfg.OutputDir = filepath.Join(filepath.Dir(abs), cfg.OutputDir)
	}

	return &cfg, nil
}

// Find walks from startDir toward the filesystem root looking for a
// config file. Returns ErrNotFound if no directory on the way has one.
func Find(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Discover loads the config nearest to startDir, falling back to the
// default config when none exists.
func Discover(startDir string) (*Config, error) {
	path, err := Find(startDir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}
