// Package config handles loading and managing Circulend CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the circulend CLI.
type Config struct {
	Advisory AdvisoryConfig `yaml:"advisory"`
	Archive  ArchiveConfig  `yaml:"archive"`
}

// AdvisoryConfig controls the optional advisory service integration.
type AdvisoryConfig struct {
	URL     string `yaml:"url"`     // empty disables advisory enrichment
	Timeout int    `yaml:"timeout"` // seconds
}

// ArchiveConfig controls where locally scored results are cached.
type ArchiveConfig struct {
	Dir string `yaml:"dir"` // empty uses ~/.cache/circulend
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Advisory: AdvisoryConfig{
			Timeout: 5,
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .circulend/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".circulend", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the local result cache directory.
// Uses ~/.cache/circulend/ unless overridden by the archive config.
func CacheDir(cfg *Config) string {
	if cfg != nil && cfg.Archive.Dir != "" {
		return cfg.Archive.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "circulend")
}

// ResultDir returns the directory where scored results are cached.
func ResultDir(cfg *Config) string {
	return filepath.Join(CacheDir(cfg), "results")
}
