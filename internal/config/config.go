// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// rewards backend. It aggregates all sub-configurations and is populated by
// merging values from an optional .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Environment variable names are flat (DATABASE_URL, PORT, ...) because they
// are shared with the hosting platform, so no envPrefix is used.
type StructuredConfig struct {
	// App holds token, hashing and paging settings.
	App App

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds the HTTP listener, CORS and timeout settings.
	Server Server

	// Log holds logging settings.
	Log Log

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is the deployment environment ("production", "development", ...).
	// Env: APP_ENV
	Env string `env:"APP_ENV"`

	// JWTSecret is the HMAC key used to sign and verify tokens.
	// Required in production.
	// Env: JWT_SECRET
	JWTSecret string `env:"JWT_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on verification.
	// Env: JWT_ISSUER
	TokenIssuer string `env:"JWT_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor for password hashing.
	// Env: BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// UsersPageSize caps the number of users returned by a single list call.
	// Env: USERS_PAGE_SIZE
	UsersPageSize int `env:"USERS_PAGE_SIZE"`

	// Version is exposed by the liveness endpoint.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`

	// UsingDevelopmentSecret is set by the loader when JWTSecret was
	// substituted with the development default. It has no env tag.
	UsingDevelopmentSecret bool
}

// IsProduction reports whether the application runs in production mode.
func (a App) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(a.Env))
	return env == "production" || env == "prod"
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB
}

// DB holds connection settings for the PostgreSQL backend.
type DB struct {
	// DSN is the PostgreSQL connection string. An empty DSN is allowed at
	// startup; database-backed operations then fail with a "not configured"
	// error.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`

	// SSL selects the TLS policy, see [DB.SSLMode].
	// Env: DB_SSL
	SSL string `env:"DB_SSL"`
}

// SSLMode is the resolved TLS policy for database connections.
type SSLMode int

const (
	// SSLNoVerify uses TLS without certificate verification. This is the
	// default, matching managed Postgres providers with self-signed chains.
	SSLNoVerify SSLMode = iota
	// SSLDisabled uses plaintext connections.
	SSLDisabled
	// SSLVerify uses TLS with full certificate verification.
	SSLVerify
	// SSLInvalid marks an unrecognised DB_SSL value.
	SSLInvalid
)

// SSLMode resolves the DB_SSL value:
//   - "" / "true" / "require" / "no-verify" → [SSLNoVerify]
//   - "false" / "disable"                  → [SSLDisabled]
//   - "verify" / "verify-full"             → [SSLVerify]
func (d DB) SSLMode() SSLMode {
	switch strings.ToLower(strings.TrimSpace(d.SSL)) {
	case "", "true", "require", "no-verify":
		return SSLNoVerify
	case "false", "disable":
		return SSLDisabled
	case "verify", "verify-full":
		return SSLVerify
	default:
		return SSLInvalid
	}
}

// Server holds network, CORS and timeout settings for the HTTP layer.
type Server struct {
	// Host is the interface to bind; empty means all interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port to listen on.
	// Env: PORT
	Port int `env:"PORT"`

	// AllowedOrigin is the cross-origin allow-list. "*" allows any origin;
	// several origins may be separated by commas.
	// Env: ALLOWED_ORIGIN
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// APIRequireAuth puts the /api/users and POST /api/settings routes
	// behind the bearer token check.
	// Env: API_REQUIRE_AUTH
	APIRequireAuth bool `env:"API_REQUIRE_AUTH"`

	// MetricsDisabled turns off the /metrics endpoint and instrumentation.
	// Env: METRICS_DISABLED
	MetricsDisabled bool `env:"METRICS_DISABLED"`
}

// Address returns the listen address in host:port form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// AllowedOrigins splits AllowedOrigin into its comma-separated entries.
func (s Server) AllowedOrigins() []string {
	origins := make([]string, 0, 1)
	for _, o := range strings.Split(s.AllowedOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// Redacted returns a copy of the configuration that is safe to log.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	redacted := cfg
	if redacted.Storage.DB.DSN != "" {
		redacted.Storage.DB.DSN = redactedValue
	}
	if redacted.App.JWTSecret != "" {
		redacted.App.JWTSecret = redactedValue
	}
	return redacted
}

const redactedValue = "***"

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields):
//  1. .env file (only fills variables absent from the environment)
//  2. Environment variables
//  3. Command-line flags (args, usually os.Args[1:])
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults are applied to whatever is still unset before validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
