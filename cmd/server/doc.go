// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

/*
Package main is the entry point of the footprints server.

The server exposes a read-only OGC API Features style view of a DuckDB
building footprint store produced by an upstream ingestion pipeline. Every
store query opens its own read-only connection, so the file can be replaced
between requests without restarting the process.

Startup order:

 1. Configuration: koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog with JSON or console output
 3. Fixture: when SEED_FIXTURE=true and the database file is missing, the
    development data set is written to DUCKDB_PATH
 4. Store: DuckDB file check and a spatial-enabled probe query
 5. Router: chi with request ids, access log, CORS, compression, rate limits
 6. Supervisor tree: store monitor and HTTP server under suture v4

Configuration:

	DUCKDB_PATH=buildings_database.db   store file
	DUCKDB_TABLE=overture_buildings     buildings table
	HTTP_PORT=8000                      listen port
	PUBLIC_URL=https://api.example.org  base of emitted links
	LOG_LEVEL=info                      trace, debug, info, warn, error
	LOG_FORMAT=json                     json or console

Example:

	SEED_FIXTURE=true DUCKDB_PATH=/tmp/fixture.db LOG_FORMAT=console ./server
	curl 'http://localhost:8000/collections/Delft/items?limit=2'
*/
package main
