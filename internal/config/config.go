// Package config loads the global bibsort configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds default values for the CLI toggles. Command-line flags
// override anything set here.
type Config struct {
	CaseSensitive      bool   `yaml:"case_sensitive,omitempty" json:"case_sensitive"`
	AllowEmptyKeys     bool   `yaml:"allow_empty_keys,omitempty" json:"allow_empty_keys"`
	AllowDOIDuplicates bool   `yaml:"allow_doi_duplicates,omitempty" json:"allow_doi_duplicates"`
	AllowEmptyDOI      bool   `yaml:"allow_empty_doi,omitempty" json:"allow_empty_doi"`
	SortBy             string `yaml:"sort_by,omitempty" json:"sort_by,omitempty"` // key, first-author-field, first-author-first-name
}

const (
	configDir  = "bibsort"
	configFile = "config.yml"
)

// SortByValues lists the accepted sort_by settings.
var SortByValues = []string{"key", "first-author-field", "first-author-first-name"}

// Path returns the config file location. BIBSORT_CONFIG wins; otherwise
// $XDG_CONFIG_HOME/bibsort/config.yml, defaulting XDG_CONFIG_HOME to
// ~/.config. Returns "" when no home directory can be determined.
func Path() string {
	if p := os.Getenv("BIBSORT_CONFIG"); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, configDir, configFile)
}

// Load reads the global config. A missing file yields a zero config, not
// an error.
func Load() (*Config, error) {
	path := Path()
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config, creating the directory if needed.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return errors.New("cannot determine config path")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks that sort_by is one of the known values.
func (c *Config) Validate() error {
	if c.SortBy == "" {
		return nil
	}
	for _, v := range SortByValues {
		if c.SortBy == v {
			return nil
		}
	}
	return fmt.Errorf("invalid sort_by: %q (valid: %v)", c.SortBy, SortByValues)
}
