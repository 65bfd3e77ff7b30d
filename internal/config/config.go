// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Settings is the top-level configuration container for the go-kv-client
// command-line tooling. It aggregates all setting groups and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Settings struct {
	// Client holds the connection settings mapped onto a kv.ClientBuilder.
	Client Client `envPrefix:"KV_"`

	// Probe holds settings for the optional health-check probe performed
	// against the constructed client.
	Probe Probe `envPrefix:"PROBE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Client holds the key-value store connection settings.
type Client struct {
	// Endpoints are the server addresses in host:port form, comma
	// separated in the environment variable.
	// Env: KV_ENDPOINTS
	Endpoints []string `env:"ENDPOINTS" envSeparator:","`

	// User is the authentication user name. Optional; set together with
	// Password.
	// Env: KV_USER
	User string `env:"USER"`

	// Password is the authentication password.
	// Env: KV_PASSWORD
	Password string `env:"PASSWORD"`

	// DialTimeout bounds the connectivity probe performed after client
	// construction (e.g. "5s", "1m").
	// Env: KV_DIAL_TIMEOUT
	DialTimeout time.Duration `env:"DIAL_TIMEOUT"`

	// LazyInit delays connecting until the client is first used instead
	// of connecting at construction.
	// Env: KV_LAZY_INIT
	LazyInit bool `env:"LAZY_INIT"`
}

// Probe holds health-check probe settings.
type Probe struct {
	// Service is the health-check service name to query; the empty string
	// queries overall server health.
	// Env: PROBE_SERVICE
	Service string `env:"SERVICE"`

	// Timeout is the maximum duration of a single probe (e.g. "5s").
	// Env: PROBE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetSettings loads, merges, and validates the tooling configuration from
// all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns fully populated *Settings or an error if any source fails to
// load or the final settings fail validation.
func GetSettings() (*Settings, error) {
	return newSettingsBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
