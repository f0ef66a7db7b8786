// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// go-table-sync client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the set of synchronized tables
	// and the bearer token used against the remote row store.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite row store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote row-store endpoint and timeout settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background sync worker.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration for the sync client.
type App struct {
	// TableIDs lists the tables this client keeps synchronized with the
	// remote row store. Comma-separated in the environment.
	// Env: APP_TABLE_IDS
	TableIDs []string `env:"TABLE_IDS" envSeparator:","`

	// AuthToken is the bearer token presented to the remote row store.
	// Token acquisition itself is outside this client; the token is handed
	// to the adapter as-is.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite store.
type DB struct {
	// DSN is the SQLite file path used to open the local row store
	// (e.g. "/var/lib/tablesync/rows.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds network settings for the remote row-store client.
type Adapter struct {
	// HTTPAddress is the base URL of the remote row-store service
	// (e.g. "https://rowstore.example.org").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background sync worker.
type Workers struct {
	// SyncInterval defines how often the sync worker runs a full pass over
	// all configured tables (e.g. "5m").
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
