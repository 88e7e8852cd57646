package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/stmt2csv/internal/importer"
	"github.com/cleared-dev/stmt2csv/internal/statement"
)

// FileName is the config file looked up in the working directory.
const FileName = "stmt2csv.yaml"

// Config represents stmt2csv.yaml.
type Config struct {
	Layout   string             `yaml:"layout"`
	Timezone string             `yaml:"timezone"` // IANA name, "Local" or "UTC"
	Output   OutputConfig       `yaml:"output"`
	Layouts  []statement.Layout `yaml:"layouts,omitempty"`
}

// OutputConfig controls where CSV files are written.
type OutputConfig struct {
	Dir   string `yaml:"dir"` // "~/" expands to the home directory
	Force bool   `yaml:"force"`
}

// Load reads a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Layout:   "default",
		Timezone: "Local",
		Output: OutputConfig{
			Dir: "~/Downloads",
		},
	}
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// OutputDir returns Output.Dir with a leading "~" expanded.
func (c *Config) OutputDir() (string, error) {
	dir := c.Output.Dir
	if dir == "" {
		dir = "."
	}
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
}

// Registry returns the built-in layouts plus those defined in the config.
func (c *Config) Registry() (*importer.Registry, error) {
	r := importer.DefaultRegistry()
	for _, l := range c.Layouts {
		if err := r.Register(l); err != nil {
			return nil, fmt.Errorf("config layouts: %w", err)
		}
	}
	return r, nil
}

// SelectedLayout looks up Layout in Registry.
func (c *Config) SelectedLayout() (statement.Layout, error) {
	r, err := c.Registry()
	if err != nil {
		return statement.Layout{}, err
	}
	l, ok := r.Get(c.Layout)
	if !ok {
		return statement.Layout{}, fmt.Errorf("unknown layout %q (available: %s)", c.Layout, strings.Join(r.Names(), ", "))
	}
	return l, nil
}
