// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags.
type Config struct {
	OutputDir    string   `json:"output_dir,omitempty"`    // Directory rendered documents are written to
	DefaultTheme string   `json:"default_theme,omitempty"` // Theme used by inputs that do not pick one
	ThemeDirs    []string `json:"theme_dirs,omitempty"`    // Custom theme folders registered before rendering
	Verbose      bool     `json:"verbose,omitempty"`       // Print detailed summaries
}

// DefaultConfigFile is looked for in the working directory when no --config
// flag is given.
const DefaultConfigFile = "rendercv.json"

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// LoadEnvironment overlays RENDERCV_* environment variables on the config.
// Environment values win over file values.
func (c *Config) LoadEnvironment() {
	if v := os.Getenv("RENDERCV_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("RENDERCV_DEFAULT_THEME"); v != "" {
		c.DefaultTheme = v
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	for _, dir := range c.ThemeDirs {
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: theme folder not found: %s", dir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: theme folder is not a directory: %s", dir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DefaultTheme == "" {
		result.DefaultTheme = defaults.DefaultTheme
	}
	if len(result.ThemeDirs) == 0 {
		result.ThemeDirs = defaults.ThemeDirs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
