package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsonlens
type Config struct {
	Fetch  FetchConfig  `yaml:"fetch"`
	Output OutputConfig `yaml:"output"`
}

// FetchConfig controls remote retrieval
type FetchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
	Accept         string `yaml:"accept"`
}

// OutputConfig controls export serialization
type OutputConfig struct {
	// IndentWidth is the number of spaces per indentation level in the
	// exported JSON.
	IndentWidth int `yaml:"indent_width"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			TimeoutSeconds: 15,
			UserAgent:      "",
			Accept:         "application/json",
		},
		Output: OutputConfig{
			IndentWidth: 2,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults so omitted keys keep their default values
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Fetch.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("fetch.timeout_seconds must be positive, got %d", cfg.Fetch.TimeoutSeconds)
	}
	if cfg.Output.IndentWidth <= 0 {
		return nil, fmt.Errorf("output.indent_width must be positive, got %d", cfg.Output.IndentWidth)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonlens.yml", ".jsonlens.yaml", "jsonlens.yml", "jsonlens.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Timeout returns the fetch timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// Indent returns the export indentation unit as a string of spaces
func (c *Config) Indent() string {
	return strings.Repeat(" ", c.Output.IndentWidth)
}
