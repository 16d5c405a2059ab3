// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/footprints/internal/logging"
)

// FixtureBuilding is one building written by SeedFixture. An empty
// Municipality is stored as NULL.
type FixtureBuilding struct {
	ID           string
	Municipality string
	WKT          string
}

// DefaultFixture returns a small EPSG:28992 (RD New) data set: three
// buildings in Delft, two in Rijswijk, and one row without a municipality
// lying inside the Delft sample bbox (78600 445000, 85800 450000).
func DefaultFixture() []FixtureBuilding {
	return []FixtureBuilding{
		{ID: "bldg-delft-0001", Municipality: "Delft",
			WKT: "POLYGON((84000 447000, 84020 447000, 84020 447020, 84000 447020, 84000 447000))"},
		{ID: "bldg-delft-0002", Municipality: "Delft",
			WKT: "POLYGON((84100 447000, 84130 447000, 84130 447025, 84100 447025, 84100 447000))"},
		{ID: "bldg-delft-0003", Municipality: "Delft",
			WKT: "MULTIPOLYGON(((84300 447300, 84310 447300, 84310 447310, 84300 447310, 84300 447300))," +
				"((84320 447300, 84330 447300, 84330 447310, 84320 447310, 84320 447300)))"},
		{ID: "bldg-rijswijk-0001", Municipality: "Rijswijk",
			WKT: "POLYGON((81000 451000, 81015 451000, 81015 451015, 81000 451015, 81000 451000))"},
		{ID: "bldg-rijswijk-0002", Municipality: "Rijswijk",
			WKT: "POLYGON((81050 451050, 81070 451050, 81070 451070, 81050 451070, 81050 451050))"},
		{ID: "bldg-unassigned-0001", Municipality: "",
			WKT: "POLYGON((85000 446000, 85010 446000, 85010 446010, 85000 446010, 85000 446000))"},
	}
}

// SeedFixture creates path (read-write) with a buildings table of the
// ingestion pipeline's shape and inserts buildings. The table is replaced if
// it exists.
func SeedFixture(ctx context.Context, path, table string, buildings []FixtureBuilding) error {
	db, err := sql.Open("duckdb", buildDSN(path, "read_write", 0, ""))
	if err != nil {
		return newStoreError("open", path, err)
	}
	defer closeWithLog(db, "database")

	conn, err := db.Conn(ctx)
	if err != nil {
		return newStoreError("connect", path, err)
	}
	defer closeWithLog(conn, "connection")

	if err := loadSpatial(ctx, conn); err != nil {
		return newStoreError("load_spatial", path, err)
	}

	statements := []string{
		fmt.Sprintf("DROP TABLE IF EXISTS %s", table),
		fmt.Sprintf("CREATE TABLE %s (id VARCHAR PRIMARY KEY, municipality_name VARCHAR, geometry GEOMETRY)", table),
	}
	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return newStoreError("seed", path, err)
		}
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (?, ?, ST_GeomFromText(?))", table)
	for _, b := range buildings {
		municipality := sql.NullString{String: b.Municipality, Valid: b.Municipality != ""}
		if _, err := conn.ExecContext(ctx, insert, b.ID, municipality, b.WKT); err != nil {
			return newStoreError("seed", path, fmt.Errorf("building %s: %w", b.ID, err))
		}
	}

	logging.Info().Str("table", table).Int("buildings", len(buildings)).Msg("Seeded fixture store")
	return nil
}
