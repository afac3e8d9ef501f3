// Package config handles loading and saving user configuration for unilookup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Lookup LookupConfig `yaml:"lookup"`
	Server ServerConfig `yaml:"server"`
	TUI    TUIConfig    `yaml:"tui"`
}

// LookupConfig tunes the resolution engine.
type LookupConfig struct {
	DecimalFloor int64 `yaml:"decimal_floor"` // Minimum value for all-digit queries to count as code points
	Index        bool  `yaml:"index"`         // Prebuild the name index at startup
}

// ServerConfig holds settings for the web front end.
type ServerConfig struct {
	Addr    string `yaml:"addr"`    // Listen address, e.g. "127.0.0.1:5000"
	Browser bool   `yaml:"browser"` // Open the browser after start
}

// TUIConfig holds settings for the terminal UI.
type TUIConfig struct {
	BigGlyph   bool `yaml:"big_glyph"`   // Render the selected glyph as block art
	MaxResults int  `yaml:"max_results"` // Rows kept in the result list
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Lookup: LookupConfig{
			DecimalFloor: ' ',
			Index:        true,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:5000",
		},
		TUI: TUIConfig{
			BigGlyph:   true,
			MaxResults: 500,
		},
	}
}

// Load reads a configuration file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDir loads the configuration file from dir, falling back to the
// defaults when the file does not exist.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Lookup.DecimalFloor < 0 {
		return fmt.Errorf("lookup.decimal_floor must not be negative, got %d", c.Lookup.DecimalFloor)
	}
	if c.TUI.MaxResults < 1 {
		return fmt.Errorf("tui.max_results must be at least 1, got %d", c.TUI.MaxResults)
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "unilookup"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Template is the commented configuration written by "unilookup init".
const Template = `# unilookup configuration

lookup:
  # All-digit queries at or above this value are read as decimal code points.
  # Below it they fall through to single-character or name search.
  decimal_floor: 32
  # Build the name index once at startup instead of scanning the name
  # table on every search.
  index: true

server:
  addr: 127.0.0.1:5000
  # Open the default browser when "unilookup serve" starts.
  browser: false

tui:
  big_glyph: true
  max_results: 500
`
