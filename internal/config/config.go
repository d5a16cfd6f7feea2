// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jonathan/job-notification-tracker/internal/storage"
)

// Environment variables read by FromEnv
const (
	EnvStore       = "JOBTRACKER_STORE"
	EnvDSN         = "JOBTRACKER_DSN"
	EnvJobs        = "JOBTRACKER_JOBS"
	EnvDatabaseURL = "DATABASE_URL"
	EnvRedisURL    = "REDIS_URL"
)

// DefaultStorePath is where the file store keeps its document when no DSN is set.
const DefaultStorePath = "jobtracker.json"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from the environment or Defaults.
type Config struct {
	Store   string `json:"store,omitempty"`   // Storage backend name (memory, file, sqlite, postgres, redis)
	DSN     string `json:"dsn,omitempty"`     // File path or connection URL for the backend
	Jobs    string `json:"jobs,omitempty"`    // Path to a JSON or YAML job dataset; empty uses the embedded sample
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration: a JSON file store in the
// working directory and the embedded sample dataset.
func Defaults() Config {
	return Config{
		Store: storage.BackendFile,
		DSN:   DefaultStorePath,
	}
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

// FromEnv builds a Config from environment variables. A bare DATABASE_URL or
// REDIS_URL selects the matching backend when JOBTRACKER_STORE is unset.
func FromEnv() Config {
	cfg := Config{
		Store: strings.TrimSpace(os.Getenv(EnvStore)),
		DSN:   strings.TrimSpace(os.Getenv(EnvDSN)),
		Jobs:  strings.TrimSpace(os.Getenv(EnvJobs)),
	}

	dbURL := strings.TrimSpace(os.Getenv(EnvDatabaseURL))
	redisURL := strings.TrimSpace(os.Getenv(EnvRedisURL))

	if cfg.Store == "" {
		switch {
		case dbURL != "":
			cfg.Store = storage.BackendPostgres
		case redisURL != "":
			cfg.Store = storage.BackendRedis
		}
	}

	if cfg.DSN == "" {
		switch strings.ToLower(cfg.Store) {
		case storage.BackendPostgres:
			cfg.DSN = dbURL
		case storage.BackendRedis:
			cfg.DSN = redisURL
		}
	}

	return cfg
}

// Validate checks that the configuration has valid values.
// Empty fields are allowed since they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	if c.Store != "" {
		name := strings.ToLower(strings.TrimSpace(c.Store))
		if !slices.Contains(storage.Backends(), name) {
			return fmt.Errorf("config error: unknown store %q (expected one of %s)",
				c.Store, strings.Join(storage.Backends(), ", "))
		}
		if (name == storage.BackendPostgres || name == storage.BackendRedis) && c.DSN == "" {
			return fmt.Errorf("config error: store %q requires a connection URL in 'dsn'", name)
		}
	}

	if c.Jobs != "" {
		if _, err := os.Stat(c.Jobs); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.Jobs)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// The DSN is only inherited when the backend is inherited too, so a file path
// never leaks into a postgres or redis configuration.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Store == "" {
		result.Store = defaults.Store
		if result.DSN == "" {
			result.DSN = defaults.DSN
		}
	} else if result.DSN == "" && strings.EqualFold(result.Store, defaults.Store) {
		result.DSN = defaults.DSN
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
