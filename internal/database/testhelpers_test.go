// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/footprints/internal/config"
)

const testTable = "overture_buildings"

// testDBSemaphore limits concurrent DuckDB instances; CGO open/close is slow
// under CI pressure.
var testDBSemaphore = make(chan struct{}, 2)

// setupFixtureStore seeds DefaultFixture into a temp file and opens it
// read-only. Skips when the spatial extension cannot be installed or loaded.
func setupFixtureStore(t *testing.T) *Store {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	path := filepath.Join(t.TempDir(), "buildings_database.db")
	if err := SeedFixture(ctx, path, testTable, DefaultFixture()); err != nil {
		if errors.Is(err, ErrSpatialUnavailable) {
			t.Skipf("spatial extension unavailable: %v", err)
		}
		t.Fatalf("SeedFixture() error = %v", err)
	}

	store, err := New(&config.DatabaseConfig{Path: path, Table: testTable, MaxMemory: "256MB"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return store
}
