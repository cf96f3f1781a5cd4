// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"faq-scan/internal/paths"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings applied when no profile is selected
	Defaults struct {
		Format          string   `yaml:"format"`
		Checks          string   `yaml:"checks"`
		Severities      string   `yaml:"severities"`
		Verbose         bool     `yaml:"verbose"`
		Debug           bool     `yaml:"debug"`
		NoColor         bool     `yaml:"no_color"`
		Recursive       bool     `yaml:"recursive"`
		Google          bool     `yaml:"google"`
		ExcludePatterns []string `yaml:"exclude_patterns"`
	} `yaml:"defaults"`

	// Profiles for different validation scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a validation profile with specific settings
type Profile struct {
	Format          string   `yaml:"format"`
	Checks          string   `yaml:"checks"`
	Severities      string   `yaml:"severities"`
	Verbose         bool     `yaml:"verbose"`
	Debug           bool     `yaml:"debug"`
	NoColor         bool     `yaml:"no_color"`
	Recursive       bool     `yaml:"recursive"`
	Google          bool     `yaml:"google"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
	Description     string   `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path. An empty path
// returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fields the file left empty fall back to defaults.
	defaults := defaultConfig()
	if config.Defaults.Format == "" {
		config.Defaults.Format = defaults.Defaults.Format
	}
	if config.Defaults.Checks == "" {
		config.Defaults.Checks = defaults.Defaults.Checks
	}
	if config.Defaults.Severities == "" {
		config.Defaults.Severities = defaults.Defaults.Severities
	}
	if config.Profiles == nil {
		config.Profiles = map[string]Profile{}
	}
	for name, profile := range defaults.Profiles {
		if _, exists := config.Profiles[name]; !exists {
			config.Profiles[name] = profile
		}
	}

	return config, nil
}

func defaultConfig() *Config {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	config.Defaults.Format = "text"
	config.Defaults.Checks = "all"
	config.Defaults.Severities = "all"

	// Strict profile for publishing gates: hard issues only, machine output.
	config.Profiles["ci"] = Profile{
		Format:      "json",
		Checks:      "all",
		Severities:  "issues",
		NoColor:     true,
		Description: "Machine-readable output with hard issues only, for CI gates",
	}

	// Authoring profile: everything visible, including rich-results checks.
	config.Profiles["authoring"] = Profile{
		Format:      "text",
		Checks:      "all",
		Severities:  "all",
		Verbose:     true,
		Google:      true,
		Description: "Full feedback with rich-results eligibility, for schema authors",
	}

	return config
}

// FindConfigFile looks for a config file in standard locations
func FindConfigFile() string {
	candidates := []string{
		"faq-scan.yaml",
		".faq-scan.yaml",
		paths.GetConfigFile(),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// GetProfile returns the named profile
func (c *Config) GetProfile(name string) (*Profile, error) {
	profile, exists := c.Profiles[name]
	if !exists {
		return nil, fmt.Errorf("profile '%s' not found", name)
	}
	return &profile, nil
}

// ListProfiles returns profile names in sorted order
func (c *Config) ListProfiles() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
