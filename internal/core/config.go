package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	NotesDir string `koanf:"notes_dir" yaml:"notes_dir"`
	Theme    string `koanf:"theme" yaml:"theme"`

	// List rendering
	RowHeight        int `koanf:"row_height" yaml:"row_height"`
	BufferRows       int `koanf:"buffer_rows" yaml:"buffer_rows"`
	ScrollThrottleMs int `koanf:"scroll_throttle_ms" yaml:"scroll_throttle_ms"`
	MaxNotesShown    int `koanf:"max_notes" yaml:"max_notes"`

	// Logging
	LogLevel string `koanf:"log_level" yaml:"log_level"`
	LogFile  string `koanf:"log_file" yaml:"log_file"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Theme:            "default",
		RowHeight:        60,
		BufferRows:       5,
		ScrollThrottleMs: 16,
		MaxNotesShown:    5000,
		LogLevel:         "info",
	}
}

// DefaultConfigPath returns the standard config file location
func DefaultConfigPath() string {
	if dir := os.Getenv("NOTEWATCH_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "notewatch", "config.yaml")
}

// LoadConfig reads configuration from the given YAML file, then overlays
// NOTEWATCH_* environment variable overrides on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), koanfyaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// NOTEWATCH_NOTES_DIR -> notes_dir, NOTEWATCH_LOG_LEVEL -> log_level, ...
	if err := k.Load(env.Provider("NOTEWATCH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "NOTEWATCH_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.NotesDir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.NotesDir = filepath.Join(home, "notes")
		}
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.NotesDir == "" {
		return fmt.Errorf("notes_dir is required")
	}
	if c.RowHeight <= 0 {
		return fmt.Errorf("row_height must be positive, got %d", c.RowHeight)
	}
	if c.BufferRows < 0 {
		return fmt.Errorf("buffer_rows must be non-negative, got %d", c.BufferRows)
	}
	if c.ScrollThrottleMs <= 0 {
		return fmt.Errorf("scroll_throttle_ms must be positive, got %d", c.ScrollThrottleMs)
	}
	if c.MaxNotesShown <= 0 {
		return fmt.Errorf("max_notes must be positive, got %d", c.MaxNotesShown)
	}
	return nil
}
