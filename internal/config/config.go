// Package config loads the reifscan configuration: an optional YAML file
// with environment-variable overrides layered on top.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = ".reifscan/config.yaml"

// Config is the full configuration tree.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// LoggingConfig controls the categorized logger.
type LoggingConfig struct {
	// Debug enables debug-level logging. Off by default.
	Debug bool `yaml:"debug"`
}

// CatalogConfig controls catalog construction.
type CatalogConfig struct {
	// ExtensionPath is an optional YAML file of additional metaphors and
	// chains merged over the default catalog at startup.
	ExtensionPath string `yaml:"extension_path"`
}

// Default returns the zero configuration.
func Default() *Config {
	return &Config{}
}

// Load reads the config file at path (DefaultPath when empty), then
// applies environment overrides. A missing file is not an error; env
// overrides still apply to the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides layers environment variables over the file values.
//
//	REIFSCAN_DEBUG    "1"/"true" enables debug logging
//	REIFSCAN_CATALOG  path to a catalog extension file
func (c *Config) applyEnvOverrides() {
	switch os.Getenv("REIFSCAN_DEBUG") {
	case "1", "true":
		c.Logging.Debug = true
	}
	if path := os.Getenv("REIFSCAN_CATALOG"); path != "" {
		c.Catalog.ExtensionPath = path
	}
}
