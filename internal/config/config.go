// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"unity-check/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Evaluator contains evaluation settings
	Evaluator EvaluatorConfig `json:"evaluator"`

	// Spreadsheet contains external mass-service settings
	Spreadsheet SpreadsheetConfig `json:"spreadsheet"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EvaluatorConfig contains evaluation-related settings
type EvaluatorConfig struct {
	// DefaultStrategy is the mass-computation strategy used when the
	// caller does not select one ("local" or "external")
	DefaultStrategy string `json:"default_strategy"`

	// MaxConcurrent bounds concurrent external-service calls per batch
	MaxConcurrent int `json:"max_concurrent"`
}

// SpreadsheetConfig contains external spreadsheet-service settings
type SpreadsheetConfig struct {
	// URL is the base URL of the spreadsheet evaluation service
	URL string `json:"url"`

	// TimeoutSeconds is the per-call timeout for the external path
	TimeoutSeconds int `json:"timeout_seconds"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-case breakdown
	ShowDetails bool `json:"show_details"`

	// ShowChart renders the utilization bar chart
	ShowChart bool `json:"show_chart"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Evaluator: EvaluatorConfig{
			DefaultStrategy: "local",
			MaxConcurrent:   4,
		},
		Spreadsheet: SpreadsheetConfig{
			URL:            "",
			TimeoutSeconds: 30,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
			ShowChart:     true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
