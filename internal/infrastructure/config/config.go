// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for dex configuration.
	DefaultConfigDir = ".dex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultModesFile is the default mode store file name.
	DefaultModesFile = "modes.json"

	// DefaultBaseURL is the public PokeAPI root.
	DefaultBaseURL = "https://pokeapi.co/api/v2"
)

// Mode store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds static configuration (read-only after init).
type Config struct {
	API       APIConfig   `yaml:"api"`
	Languages []string    `yaml:"languages" env:"DEX_LANGUAGES" envSeparator:","`
	Modes     ModesConfig `yaml:"modes"`
	LogLevel  string      `yaml:"log_level" env:"DEX_LOG_LEVEL"`
}

// APIConfig holds configuration for the upstream PokeAPI.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url" env:"DEX_API_BASE_URL"`
	Timeout   time.Duration `yaml:"timeout" env:"DEX_API_TIMEOUT"`
	UserAgent string        `yaml:"user_agent" env:"DEX_API_USER_AGENT"`
	// Retries is the number of extra attempts for transient network
	// failures. Zero disables retrying.
	Retries      int `yaml:"retries" env:"DEX_API_RETRIES"`
	SpeciesLimit int `yaml:"species_limit" env:"DEX_API_SPECIES_LIMIT"`
	Concurrency  int `yaml:"concurrency" env:"DEX_API_CONCURRENCY"`
}

// ModesConfig holds configuration for the mode store.
type ModesConfig struct {
	Backend string `yaml:"backend" env:"DEX_MODES_BACKEND"`
	// Path is the store location. Relative paths resolve against the
	// config directory.
	Path string `yaml:"path,omitempty" env:"DEX_MODES_PATH"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:      DefaultBaseURL,
			Timeout:      30 * time.Second,
			UserAgent:    "dex-core",
			SpeciesLimit: 386,
			Concurrency:  1,
		},
		Languages: []string{"ja", "ja-Hrkt"},
		Modes: ModesConfig{
			Backend: BackendJSON,
		},
		LogLevel: "info",
	}
}

// Load loads configuration from the .dex directory in the given path. A
// missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies DEX_* environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// Validate reports configuration values the application cannot run with.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must be set")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.Retries < 0 {
		return fmt.Errorf("api.retries must not be negative, got %d", c.API.Retries)
	}
	if c.API.SpeciesLimit <= 0 {
		return fmt.Errorf("api.species_limit must be positive, got %d", c.API.SpeciesLimit)
	}
	if c.API.Concurrency <= 0 {
		return fmt.Errorf("api.concurrency must be positive, got %d", c.API.Concurrency)
	}
	if len(c.Languages) == 0 {
		return errors.New("languages must not be empty")
	}
	switch c.Modes.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown modes.backend %q (want %s or %s)", c.Modes.Backend, BackendJSON, BackendSQLite)
	}
	return nil
}

// ModesPath returns the mode store location for the configured backend.
func (c *Config) ModesPath(basePath string) string {
	path := c.Modes.Path
	if path == "" {
		path = DefaultModesFile
		if c.Modes.Backend == BackendSQLite {
			path = "modes.db"
		}
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ConfigDir(basePath), path)
}

// ConfigDir returns the path to the .dex config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a dex config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
