// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the propchat
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version string.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the backend HTTP adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local durable store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the outbound HTTP transport to the assistant
// backend.
type Adapter struct {
	// BaseURL is the root URL of the assistant backend
	// (e.g. "https://api.propchat.example").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs the
// durable key-value store and the history cache.
type DB struct {
	// DSN is the SQLite file path (e.g. "propchat.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the token refresh worker re-checks
	// credential expiry (e.g. "5m").
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults applied after merging when a field was left unset by every source.
const (
	defaultBaseURL         = "http://localhost:8000"
	defaultRequestTimeout  = 15 * time.Second
	defaultDSN             = "propchat.db"
	defaultRefreshInterval = 5 * time.Minute
)

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source fall back to built-in defaults. Returns a
// fully populated *StructuredConfig or an error if any source fails to load
// or the final config fails validation.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = defaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// client's startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
