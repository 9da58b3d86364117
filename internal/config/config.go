// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Config is the top-level configuration container for the health sync
// application. It is populated once at startup by merging values from
// environment variables, command-line flags, and an optional .env file,
// then passed by reference into the adapters and the orchestrator.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Garmin holds the Garmin Connect account credentials and endpoint.
	Garmin Garmin `envPrefix:"GARMIN_"`

	// Notion holds the Notion integration token, destination database IDs,
	// and endpoint.
	Notion Notion `envPrefix:"NOTION_"`

	// HTTP holds outbound request settings shared by both API clients.
	HTTP HTTP `envPrefix:"HTTP_"`

	// EnvFilePath is the optional path to a .env file. When the file
	// exists it is read and used to fill variables that are not already
	// set in the process environment or flags.
	// Populated via the ENV_FILE environment variable or the -env-file flag.
	EnvFilePath string `env:"ENV_FILE"`
}

// Garmin holds the Garmin Connect account settings.
type Garmin struct {
	// Email is the Garmin Connect account identifier. Required.
	// Env: GARMIN_EMAIL
	Email string `env:"EMAIL"`

	// Password is the Garmin Connect account credential. Required.
	// Env: GARMIN_PASSWORD
	Password string `env:"PASSWORD"`

	// BaseURL overrides the Garmin Connect API endpoint. Empty means the
	// adapter's production default.
	// Env: GARMIN_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Notion holds the Notion integration settings.
type Notion struct {
	// Token is the Notion integration token. Required.
	// Env: NOTION_TOKEN
	Token string `env:"TOKEN"`

	// HeartRateDBID is the ID of the heart-rate database. Optional: when
	// empty the heart-rate upload is disabled and the rest of the run
	// proceeds.
	// Env: NOTION_HEART_RATE_DB_ID
	HeartRateDBID string `env:"HEART_RATE_DB_ID"`

	// RespirationDBID is the ID of the respiration database. Optional:
	// when empty the respiration upload is disabled.
	// Env: NOTION_RESPIRATION_DB_ID
	RespirationDBID string `env:"RESPIRATION_DB_ID"`

	// BaseURL overrides the Notion API endpoint. Empty means the adapter's
	// production default.
	// Env: NOTION_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// HTTP holds outbound transport settings.
type HTTP struct {
	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s", "1m"). Zero means the adapter default.
	// Env: HTTP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetConfig loads, merges, and validates the application configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. .env file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withEnvFile().
		build()
}
