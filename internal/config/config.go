// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig describes the DuckDB store holding building footprints.
// The store is only ever opened read-only by the API.
type DatabaseConfig struct {
	// Path is the DuckDB database file populated by the ingestion pipeline.
	Path string `koanf:"path"`

	// Table is the buildings table name. Must be a plain SQL identifier
	// because it is interpolated into query text.
	Table string `koanf:"table"`

	// MaxMemory is passed to DuckDB as max_memory (e.g. "1GB").
	MaxMemory string `koanf:"max_memory"`

	// Threads limits DuckDB worker threads per connection. 0 keeps the driver default.
	Threads int `koanf:"threads"`

	// SpatialOptional lets the server start when the spatial extension cannot be
	// loaded. Every store query still requires it and fails with a StoreError.
	SpatialOptional bool `koanf:"spatial_optional"`

	// SeedFixture writes the development fixture to Path at startup when no
	// database file exists there yet.
	SeedFixture bool `koanf:"seed_fixture"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// PublicURL replaces scheme and host of emitted links when the service runs
	// behind a proxy that rewrites them (e.g. "https://api.example.org").
	PublicURL string `koanf:"public_url"`

	// TrustForwardedHeaders honors X-Forwarded-Proto and X-Forwarded-Host when
	// reconstructing request URLs for links.
	TrustForwardedHeaders bool `koanf:"trust_forwarded_headers"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds paging parameters for item listings
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
