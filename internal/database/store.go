// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver

	"github.com/tomtom215/footprints/internal/config"
	"github.com/tomtom215/footprints/internal/database/query"
	"github.com/tomtom215/footprints/internal/logging"
	"github.com/tomtom215/footprints/internal/metrics"
)

// Row is one result row keyed by column name. []byte values are converted
// to string; SQL NULL is nil.
type Row map[string]interface{}

// Store runs read-only queries against the building store. It holds only
// immutable settings and is safe for concurrent use.
type Store struct {
	path  string
	dsn   string
	table string
}

// New validates that the store file exists and is queryable with spatial
// loaded. With SpatialOptional set, a spatial failure is logged instead of
// returned; queries will still fail until the extension becomes loadable.
func New(cfg *config.DatabaseConfig) (*Store, error) {
	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, fmt.Errorf("database file %s: %w", cfg.Path, err)
	}

	s := &Store{
		path:  cfg.Path,
		dsn:   buildDSN(cfg.Path, "read_only", cfg.Threads, cfg.MaxMemory),
		table: cfg.Table,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Ping(ctx); err != nil {
		if !cfg.SpatialOptional {
			return nil, err
		}
		logging.Warn().Err(err).Msg("Store check failed, continuing because spatial is optional")
	}

	logging.Info().Str("table", s.table).Msg("Building store ready")
	return s, nil
}

// buildDSN builds a DuckDB connection string. Auto-install and auto-load are
// disabled; the spatial extension is loaded explicitly per connection.
func buildDSN(path, accessMode string, threads int, maxMemory string) string {
	params := url.Values{}
	params.Set("access_mode", accessMode)
	params.Set("autoinstall_known_extensions", "false")
	params.Set("autoload_known_extensions", "false")
	if threads > 0 {
		params.Set("threads", strconv.Itoa(threads))
	}
	if maxMemory != "" {
		params.Set("max_memory", maxMemory)
	}
	return path + "?" + params.Encode()
}

// Table returns the buildings table name.
func (s *Store) Table() string {
	return s.table
}

// Ping opens a connection, loads spatial and runs SELECT 1.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.Query(ctx, "ping", query.Statement{SQL: "SELECT 1 AS ok"})
	return err
}

// Query executes one statement on a fresh read-only connection and returns
// all rows. operation labels the store metrics.
func (s *Store) Query(ctx context.Context, operation string, stmt query.Statement) ([]Row, error) {
	start := time.Now()
	var rows []Row
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		var qerr error
		rows, qerr = s.scanAll(ctx, conn, stmt)
		return qerr
	})
	metrics.RecordStoreQuery(operation, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// withConn scopes one database handle and one connection around fn.
// Both are released on every path.
func (s *Store) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	db, err := sql.Open("duckdb", s.dsn)
	if err != nil {
		return newStoreError("open", s.path, err)
	}
	defer closeWithLog(db, "database")

	conn, err := db.Conn(ctx)
	if err != nil {
		return newStoreError("connect", s.path, err)
	}
	metrics.TrackStoreConnection(true)
	defer func() {
		closeWithLog(conn, "connection")
		metrics.TrackStoreConnection(false)
	}()

	if err := loadSpatial(ctx, conn); err != nil {
		return newStoreError("load_spatial", s.path, err)
	}

	return fn(conn)
}

func (s *Store) scanAll(ctx context.Context, conn *sql.Conn, stmt query.Statement) ([]Row, error) {
	rows, err := conn.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, newStoreError("query", s.path, err)
	}
	defer closeQuietly(rows)

	columns, err := rows.Columns()
	if err != nil {
		return nil, newStoreError("scan", s.path, err)
	}

	result := []Row{}
	values := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, newStoreError("scan", s.path, err)
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, newStoreError("scan", s.path, err)
	}
	return result, nil
}
