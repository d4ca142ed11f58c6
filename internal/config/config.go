// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMetricsPath     = "/metrics"
	DefaultMaxOpenConns    = 10
)

// StructuredConfig is the top-level configuration container for the
// customers service. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - validate : go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the customer store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Metrics controls the prometheus endpoint.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /api/version. When empty, the build
	// version injected by the linker is used instead.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the customer store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend:
	//   - "postgres://..." or "postgresql://...": PostgreSQL via pgx;
	//   - "file:..." , "*.db" or ":memory:": SQLite;
	//   - empty: in-process memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the connection pool size.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS" validate:"gte=0"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// BaseURL is the externally visible URL of the service used for "self"
	// links (e.g. "https://api.example.com"). When empty, links are built
	// from the incoming request.
	// Env: SERVER_BASE_URL
	BaseURL string `env:"BASE_URL" validate:"omitempty,url"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// Metrics controls the prometheus instrumentation.
type Metrics struct {
	// Disabled turns off both request instrumentation and the scrape endpoint.
	// Env: METRICS_DISABLED
	Disabled bool `env:"DISABLED"`

	// Path is the scrape endpoint path.
	// Env: METRICS_PATH
	Path string `env:"PATH" validate:"omitempty,startswith=/"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{MaxOpenConns: DefaultMaxOpenConns},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Metrics: Metrics{
			Path: DefaultMetricsPath,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
