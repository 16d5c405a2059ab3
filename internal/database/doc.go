// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

/*
Package database is the read-only accessor for the DuckDB building store.

The store file is produced by an external ingestion pipeline. This package
never writes to it (SeedFixture aside, which builds development and test
databases from scratch).

# Connection Model

There is no shared connection or pool. Every Query call:

 1. opens the database file with access_mode=read_only
 2. takes one dedicated connection and runs LOAD spatial on it
 3. runs the statement and scans all rows into memory
 4. closes the connection and the database handle on every exit path

Concurrent requests therefore never share mutable driver state. Read-only
DuckDB handles on the same file do not conflict.

# Errors

Every failure is returned as *StoreError. Spatial extension failures also
match ErrSpatialUnavailable via errors.Is. Errors are terminal; nothing is
retried.

# Usage

	store, err := database.New(&cfg.Database)
	municipalities, err := store.ListMunicipalities(ctx)
	page, err := store.QueryPage(ctx, query.NewWhereBuilder().Visible().AddMunicipality("Delft"), 50, 0)
*/
package database
