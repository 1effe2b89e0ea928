// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Profiles select the default values applied to unset settings.
const (
	ProfileDevelopment = "development"
	ProfileProduction  = "production"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from a JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the active profile.
	App App `envPrefix:"APP_"`

	// Adapter holds the HR API address and outbound request policy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Cache controls the shared cache of reference-data reads.
	Cache Cache `envPrefix:"CACHE_"`

	// Logging toggles the request/response logging interceptor.
	Logging Logging `envPrefix:"LOGGING_"`

	// Session holds the token-refresh policy.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the development API server.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds token settings of the development API server.
	Auth Auth `envPrefix:"AUTH_"`

	// Workers holds background worker settings of the development server.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Profile is "development" or "production".
	// Env: APP_PROFILE
	Profile string `env:"PROFILE"`
}

// Adapter holds the outbound HTTP settings of the client.
type Adapter struct {
	// HTTPAddress is the base address of the HR API
	// (e.g. "http://localhost:4000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every single request attempt.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Retries is the number of extra attempts for read requests.
	// Env: ADAPTER_RETRIES
	Retries *int `env:"RETRIES"`

	// RetryWait is the constant pause between read attempts.
	// Env: ADAPTER_RETRY_WAIT
	RetryWait time.Duration `env:"RETRY_WAIT"`

	// DownloadDir is where downloaded files are saved.
	// Env: ADAPTER_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Cache controls cached reads.
type Cache struct {
	// Enabled turns the read cache on.
	// Env: CACHE_ENABLED
	Enabled *bool `env:"ENABLED"`

	// TTL is how long the most recent success is replayed.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Logging toggles HTTP logging.
type Logging struct {
	// Enabled turns the logging interceptor on.
	// Env: LOGGING_ENABLED
	Enabled *bool `env:"ENABLED"`
}

// Session holds refresh settings.
type Session struct {
	// RefreshTimeout bounds both the refresh call and the time a request
	// waits for an in-flight refresh.
	// Env: SESSION_REFRESH_TIMEOUT
	RefreshTimeout time.Duration `env:"REFRESH_TIMEOUT"`
}

// Storage groups storage settings.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (":memory:" for a throwaway database).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network settings of the development API server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds handler execution.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SecureCookies marks session cookies Secure.
	// Env: SERVER_SECURE_COOKIES
	SecureCookies *bool `env:"SECURE_COOKIES"`
}

// Auth holds token settings of the development API server.
type Auth struct {
	// TokenSignKey signs access tokens (HMAC-SHA256).
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of access tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AccessTokenDuration is the lifetime of the access cookie.
	// Env: AUTH_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// RefreshTokenDuration is the lifetime of the refresh cookie.
	// Env: AUTH_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`
}

// Workers holds background worker settings.
type Workers struct {
	// JanitorInterval is how often expired refresh sessions are purged.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name; the
// positional arguments left after flag parsing are returned as rest.
func GetStructuredConfig(args []string) (cfg *StructuredConfig, rest []string, err error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err = b.build()
	return cfg, b.rest, err
}
