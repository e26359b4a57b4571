// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// cf-cookie-client tools. It is populated by merging values from environment
// variables and an optional JSON file; anything left unset falls back to the
// built-in defaults.
//
// The interactive tools deliberately expose no command-line flags: the whole
// CLI surface is menu prompts and free-text input, so configuration comes
// from the environment only.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the refresh-server endpoint settings.
	Server Server `envPrefix:"SERVER_"`

	// Timeouts holds the per-endpoint request deadlines.
	Timeouts Timeouts `envPrefix:"TIMEOUT_"`

	// Batch holds batch-refresh pacing settings.
	Batch Batch `envPrefix:"BATCH_"`

	// Output holds report persistence settings.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the environment.
	// Env: CFCLIENT_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Server holds the address of the external cookie refresh service.
type Server struct {
	// BaseURL is the root URL of the refresh server.
	// Env: CFCLIENT_SERVER_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Timeouts groups the per-endpoint request deadlines. The refresh endpoint
// drives a real browser on the server side and routinely takes 10-30 seconds,
// hence the much larger default.
type Timeouts struct {
	// Refresh bounds POST /cache/refresh. Env: CFCLIENT_TIMEOUT_REFRESH
	Refresh time.Duration `env:"REFRESH"`

	// Cookies bounds GET /cookies. Env: CFCLIENT_TIMEOUT_COOKIES
	Cookies time.Duration `env:"COOKIES"`

	// Probe bounds the startup connectivity check against /cache/stats.
	// Env: CFCLIENT_TIMEOUT_PROBE
	Probe time.Duration `env:"PROBE"`
}

// Batch holds pacing for sequential batch refreshes.
type Batch struct {
	// Delay is the pause inserted between consecutive refresh calls.
	// Env: CFCLIENT_BATCH_DELAY
	Delay time.Duration `env:"DELAY"`
}

// Output holds settings for persisted report files.
type Output struct {
	// Dir is the directory report files are written into.
	// Env: CFCLIENT_OUTPUT_DIR
	Dir string `env:"DIR"`
}

// Defaults mirrors the contract of the external refresh server: 120 s for a
// refresh, 60 s for a cookie lookup, 5 s for the startup probe, and a fixed
// 2 s pause between batch items.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{BaseURL: "http://localhost:8000"},
		Timeouts: Timeouts{
			Refresh: 120 * time.Second,
			Cookies: 60 * time.Second,
			Probe:   5 * time.Second,
		},
		Batch:  Batch{Delay: 2 * time.Second},
		Output: Output{Dir: "."},
	}
}

// GetConfig loads, merges, and validates the client configuration from all
// available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. JSON file (path resolved from source 1)
//  3. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
