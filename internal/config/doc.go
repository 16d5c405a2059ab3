// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

/*
Package config provides centralized configuration management for Footprints.

Configuration is layered with koanf. Sources are applied in order, later
sources overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/footprints/config.yaml)
 3. Environment variables (DUCKDB_PATH, HTTP_PORT, LOG_LEVEL, ...)

# Configuration Structure

  - DatabaseConfig: DuckDB file, buildings table, resource limits, fixture seeding
  - ServerConfig: HTTP listener, public URL, timeouts
  - APIConfig: page size defaults and bounds
  - SecurityConfig: CORS origins and rate limiting
  - LoggingConfig: zerolog level and output format

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Load validates the result; an invalid configuration is never returned.

# Environment Variables

Only variables listed in the env mapping table are read. Unknown variables are
ignored so that unrelated process environment cannot leak into configuration.
Slice settings (CORS_ORIGINS) accept comma-separated values.
*/
package config
