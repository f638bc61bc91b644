// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume   string `json:"resume,omitempty" validate:"omitempty"`       // Path to resume file (txt or pdf)
	Job      string `json:"job,omitempty" validate:"omitempty"`          // Path to job description file
	JobURL   string `json:"job_url,omitempty" validate:"omitempty,url"`  // URL to fetch job posting from
	Taxonomy string `json:"taxonomy,omitempty" validate:"omitempty"`     // Path to a custom taxonomy JSON file

	// Scoring. Pointers distinguish "not set" from an explicit zero, which is
	// a valid value (a zero similarity weight means coverage-only scoring).
	SimilarityWeight  *float64 `json:"similarity_weight,omitempty" validate:"omitempty,gte=0,lte=1"`  // Weight for embedding similarity (0.0-1.0)
	CoverageWeight    *float64 `json:"coverage_weight,omitempty" validate:"omitempty,gte=0,lte=1"`    // Weight for skill coverage (0.0-1.0)
	StrongThreshold   *float64 `json:"strong_threshold,omitempty" validate:"omitempty,gte=0,lte=100"` // Composite score for a strong match
	ModerateThreshold *float64 `json:"moderate_threshold,omitempty" validate:"omitempty,gte=0,lte=100"`

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA sites
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	for _, p := range []struct{ name, path string }{
		{"resume", c.Resume},
		{"job", c.Job},
		{"taxonomy", c.Taxonomy},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", p.name, p.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: nil means unset; an explicit zero is kept
	if result.SimilarityWeight == nil {
		result.SimilarityWeight = defaults.SimilarityWeight
	}
	if result.CoverageWeight == nil {
		result.CoverageWeight = defaults.CoverageWeight
	}
	if result.StrongThreshold == nil {
		result.StrongThreshold = defaults.StrongThreshold
	}
	if result.ModerateThreshold == nil {
		result.ModerateThreshold = defaults.ModerateThreshold
	}

	// Boolean fields: true wins (either source enables)
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
