// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the call
// recorder service. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: session token verification,
	// replay behaviour and logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// Redis idempotency store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and request limits of the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups settings consumed by the service layer.
type App struct {
	// TokenSignKey is the HMAC secret session JWTs are signed with.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of session JWTs.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// HashKey keys the HMAC applied to idempotency keys before they are
	// used as Redis keys.
	HashKey string `env:"HASH_KEY"`

	// FlyRegion is the region this instance runs in.
	FlyRegion string `env:"FLY_REGION"`

	// PrimaryRegion is the region that owns the writable database.
	// Mutating requests received elsewhere are replayed there.
	PrimaryRegion string `env:"PRIMARY_REGION"`

	// IdempotencyTTL is how long a remembered response can be replayed.
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported in the startup log.
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the idempotency store settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN selects the driver by scheme: postgres:// or postgresql:// for
	// PostgreSQL, sqlite:// or file: for SQLite.
	DSN string `env:"DATABASE_URI"`
}

// Redis holds the connection settings of the idempotency store.
// An empty Address disables idempotency replay.
type Redis struct {
	Address  string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"`
}

// Server holds HTTP server settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes caps the size of a submitted form body.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// SubmitRateLimit is the number of submissions allowed per client IP
	// within SubmitRateWindow.
	SubmitRateLimit int `env:"SUBMIT_RATE_LIMIT"`

	// SubmitRateWindow is the sliding window of SubmitRateLimit.
	SubmitRateWindow time.Duration `env:"SUBMIT_RATE_WINDOW"`
}

// Defaults applied to fields that remain zero after all sources are merged.
const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultMaxBodyBytes     = 25 << 20
	DefaultSubmitRateLimit  = 10
	DefaultSubmitRateWindow = time.Minute
	DefaultTokenIssuer      = "call-recorder"
	DefaultIdempotencyTTL   = 24 * time.Hour
)

// GetStructuredConfig loads, merges and validates the server configuration
// from environment variables, command-line flags and an optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Server.SubmitRateLimit == 0 {
		cfg.Server.SubmitRateLimit = DefaultSubmitRateLimit
	}
	if cfg.Server.SubmitRateWindow == 0 {
		cfg.Server.SubmitRateWindow = DefaultSubmitRateWindow
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.IdempotencyTTL == 0 {
		cfg.App.IdempotencyTTL = DefaultIdempotencyTTL
	}
}
