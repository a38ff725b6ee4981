// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Behavior
	APIKey          string `json:"api_key,omitempty"`           // Gemini API key
	Model           string `json:"model,omitempty"`             // Preferred model for layout analysis
	DisableAILayout bool   `json:"disable_ai_layout,omitempty"` // Force heuristic-only layout recommendations
	Theme           string `json:"theme,omitempty"`             // Deck theme name
	Verbose         bool   `json:"verbose,omitempty"`           // Print detailed debug information

	// Paths
	LedgerPath string `json:"ledger_path,omitempty"` // Usage ledger persistence file
	OutputDir  string `json:"output_dir,omitempty"`  // Rendered document output directory

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for drafts and runs
}

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

// ApplyEnv overrides config values from the environment. Environment wins
// over the config file so deployments can rotate credentials without
// editing files.
func (c *Config) ApplyEnv() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.APIKey = key
	}
	if model := os.Getenv("IM_CREATOR_MODEL"); model != "" {
		c.Model = model
	}
	if strings.EqualFold(os.Getenv("DISABLE_AI_LAYOUT"), "true") {
		c.DisableAILayout = true
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.DatabaseURL = url
	}
	if path := os.Getenv("IM_CREATOR_LEDGER"); path != "" {
		c.LedgerPath = path
	}
}

// Validate checks that the configuration has valid values.
// Note: required fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.OutputDir != "" {
		if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'output_dir' is not a directory: %s", c.OutputDir)
		}
	}
	if c.LedgerPath != "" {
		if info, err := os.Stat(c.LedgerPath); err == nil && info.IsDir() {
			return fmt.Errorf("config error: 'ledger_path' is a directory: %s", c.LedgerPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled
// from defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if result.LedgerPath == "" {
		result.LedgerPath = defaults.LedgerPath
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
