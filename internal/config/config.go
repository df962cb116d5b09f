// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags. Environment variables (via a .env file loaded in main) win
// over file values for the fields that support them.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port for `serve`

	// Enhancement defaults
	Industry        string `json:"industry,omitempty"`         // Default industry for enhancement
	ExperienceLevel string `json:"experience_level,omitempty"` // entry | mid | senior | executive

	// Behavior
	Verbose    bool  `json:"verbose,omitempty"`     // Print detailed output boxes
	RandomSeed int64 `json:"random_seed,omitempty"` // Seed for enhancement randomness (0 = clock)
}

// DefaultPort is used when neither config nor flags set one.
const DefaultPort = 8080

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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.ExperienceLevel {
	case "", "entry", "mid", "senior", "executive":
	default:
		return fmt.Errorf("config error: 'experience_level' must be one of entry, mid, senior, executive")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags always win over the merged result for bools.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		if defaults.Port != 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}
	if result.Industry == "" {
		result.Industry = defaults.Industry
	}
	if result.ExperienceLevel == "" {
		result.ExperienceLevel = defaults.ExperienceLevel
	}
	if result.RandomSeed == 0 {
		result.RandomSeed = defaults.RandomSeed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
