// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the webhook receiver. It is populated by merging defaults, an
// optional .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: logging and version.
	App App `envPrefix:"APP_"`

	// Backend holds the backend-as-a-service endpoint and credentials.
	Backend Backend `envPrefix:"BACKEND_"`

	// Sheets holds the spreadsheet bridge settings.
	Sheets Sheets `envPrefix:"SHEETS_"`

	// Storage holds the local databases used by both binaries.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the webhook receiver listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job schedules.
	Workers Workers `envPrefix:"WORKERS_"`

	// EnvFilePath is the optional path of a dotenv file loaded before the
	// environment is parsed. Defaults to ".env" in the working directory.
	EnvFilePath string `env:"ENV_FILE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the client log file path. The terminal belongs to the UI,
	// so the client never logs to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Backend holds connection settings for the hosted backend (auth + REST
// tables).
type Backend struct {
	// URL is the project base URL, e.g. "https://xyz.supabase.co".
	// Env: BACKEND_URL
	URL string `env:"URL"`

	// AnonKey is the public API key sent in the "apikey" header.
	// Env: BACKEND_ANON_KEY
	AnonKey string `env:"ANON_KEY"`

	// RequestTimeout bounds every backend request.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sheets holds the spreadsheet bridge settings.
type Sheets struct {
	// ScriptURL is the webhook endpoint transaction events are POSTed to.
	// Empty disables the bridge (every sync becomes a logged no-op).
	// Env: SHEETS_SCRIPT_URL
	ScriptURL string `env:"SCRIPT_URL"`

	// RequestTimeout bounds a single sync POST.
	// Env: SHEETS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReconcileToken, when set, must be presented in the X-Reconcile-Token
	// header to trigger a manual rebuild on the receiver.
	// Env: SHEETS_RECONCILE_TOKEN
	ReconcileToken string `env:"RECONCILE_TOKEN"`
}

// Storage groups local database settings.
type Storage struct {
	// SessionDB persists the client auth session between runs.
	SessionDB DB `envPrefix:"SESSION_DB_"`

	// SheetDB stores the receiver's spreadsheet rows.
	SheetDB DB `envPrefix:"SHEET_DB_"`
}

// DB holds a database connection string. A "postgres://" or
// "postgresql://" DSN selects PostgreSQL (pgx); anything else is treated as
// an SQLite file path.
type DB struct {
	// Env: STORAGE_SESSION_DB_DSN / STORAGE_SHEET_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds the webhook receiver listener settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job schedules.
type Workers struct {
	// TokenRefreshInterval is how often the client checks whether the access
	// token must be refreshed.
	// Env: WORKERS_TOKEN_REFRESH_INTERVAL
	TokenRefreshInterval time.Duration `env:"TOKEN_REFRESH_INTERVAL"`

	// ReconcileAt is the local "HH:MM" time of the receiver's daily rebuild.
	// Env: WORKERS_RECONCILE_AT
	ReconcileAt string `env:"RECONCILE_AT"`
}

// Defaults returns the baseline configuration every other source is merged
// on top of.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: "debug"},
		Backend: Backend{
			RequestTimeout: 15 * time.Second,
		},
		Sheets: Sheets{
			RequestTimeout: 10 * time.Second,
		},
		Storage: Storage{
			SessionDB: DB{DSN: "infaq-session.db"},
			SheetDB:   DB{DSN: "infaq-sheet.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8081",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			TokenRefreshInterval: time.Minute,
			ReconcileAt:          "06:00",
		},
		EnvFilePath: ".env",
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later non-zero fields
// win):
//  0. Defaults
//  1. .env file (only fills variables missing from the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
