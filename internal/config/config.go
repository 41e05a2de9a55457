// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artur Akhmedov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the repsync
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the account the client logs
	// workouts for and the opaque API token forwarded to the coaching API.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network address and timeout settings for the outbound
	// coaching-API transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

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
	// OwnerID is the account identifier used in every coaching-API request
	// and in the identity key of queued snapshots.
	// Env: APP_OWNER_ID
	OwnerID int64 `env:"OWNER_ID"`

	// APIToken is the opaque bearer token attached to outbound requests.
	// Authentication itself happens outside this client; the token is
	// forwarded as-is.
	// Env: APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs the
// pending-write queue and the preferences store.
type DB struct {
	// DSN is the SQLite file path (e.g. "repsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for the outbound coaching-API transport.
type Adapter struct {
	// HTTPAddress is the base address of the coaching API
	// (e.g. "https://coach.example.com" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s", "1m"). Transport timeouts surface to the sync
	// engine as per-item failures.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the background sync job drains the
	// pending-write queue (e.g. "5m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
