// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tomtom215/footprints/internal/logging"
)

// duckdbVersion is the DuckDB release bundled with duckdb-go v2.5.x; it names
// the local extension directory.
const duckdbVersion = "v1.4.3"

const spatialExtension = "spatial"

// isExtensionInstalledLocally checks ~/.duckdb/extensions/{version}/{platform}/.
func isExtensionInstalledLocally(extensionName string) bool {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return false
	}

	platform := runtime.GOOS + "_" + runtime.GOARCH
	extPath := filepath.Join(homeDir, ".duckdb", "extensions", duckdbVersion, platform, extensionName+".duckdb_extension")

	_, err = os.Stat(extPath)
	return err == nil
}

// loadSpatial makes ST_* functions available on conn. LOAD is tried first
// since the extension is normally on disk; INSTALL only runs when it is not.
func loadSpatial(ctx context.Context, conn *sql.Conn) error {
	loadErr := execExtension(ctx, conn, "LOAD")
	if loadErr == nil {
		return nil
	}

	if isExtensionInstalledLocally(spatialExtension) {
		return fmt.Errorf("%w: load failed: %w", ErrSpatialUnavailable, loadErr)
	}

	logging.Info().Str("extension", spatialExtension).Msg("Extension not found locally, installing")
	if err := execExtension(ctx, conn, "INSTALL"); err != nil {
		return fmt.Errorf("%w: install failed: %w (load error: %w)", ErrSpatialUnavailable, err, loadErr)
	}
	if err := execExtension(ctx, conn, "LOAD"); err != nil {
		return fmt.Errorf("%w: load after install failed: %w", ErrSpatialUnavailable, err)
	}
	return nil
}

func execExtension(ctx context.Context, conn *sql.Conn, verb string) error {
	_, err := conn.ExecContext(ctx, verb+" "+spatialExtension)
	return err
}
