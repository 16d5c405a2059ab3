// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/footprints/internal/database/query"
)

// Municipality is one distinct non-null municipality_name and its row count.
type Municipality struct {
	Name          string
	BuildingCount int64
}

// Page is the result of a paged building query.
type Page struct {
	NumberMatched int64
	Rows          []Row
}

// ListMunicipalities returns all municipalities ordered by building count
// descending, then name.
func (s *Store) ListMunicipalities(ctx context.Context) ([]Municipality, error) {
	rows, err := s.Query(ctx, "list_municipalities",
		query.Municipalities(s.table, query.NewWhereBuilder().Visible()))
	if err != nil {
		return nil, err
	}
	return toMunicipalities(rows)
}

// GetMunicipality returns one municipality, or found=false if it has no
// visible buildings.
func (s *Store) GetMunicipality(ctx context.Context, name string) (Municipality, bool, error) {
	rows, err := s.Query(ctx, "get_municipality",
		query.Municipalities(s.table, query.NewWhereBuilder().Visible().AddMunicipality(name)))
	if err != nil {
		return Municipality{}, false, err
	}
	list, err := toMunicipalities(rows)
	if err != nil || len(list) == 0 {
		return Municipality{}, false, err
	}
	return list[0], true, nil
}

// QueryPage runs the aligned count and data queries for where. Both run on
// separate connections; the store is immutable so they observe the same data.
func (s *Store) QueryPage(ctx context.Context, where *query.WhereBuilder, limit, offset int) (Page, error) {
	q := query.Paged(s.table, where, limit, offset)

	countRows, err := s.Query(ctx, "count_buildings", q.Count)
	if err != nil {
		return Page{}, err
	}
	if len(countRows) != 1 {
		return Page{}, newStoreError("scan", s.path, fmt.Errorf("count query returned %d rows", len(countRows)))
	}
	total, err := rowInt64(countRows[0], query.AliasNumberMatched)
	if err != nil {
		return Page{}, newStoreError("scan", s.path, err)
	}

	// Skip the data query when the page is past the end.
	if int64(offset) >= total {
		return Page{NumberMatched: total, Rows: []Row{}}, nil
	}

	rows, err := s.Query(ctx, "list_buildings", q.Data)
	if err != nil {
		return Page{}, err
	}
	return Page{NumberMatched: total, Rows: rows}, nil
}

// MunicipalityPage pages the buildings of one municipality. An unknown
// municipality yields an empty page.
func (s *Store) MunicipalityPage(ctx context.Context, municipality string, limit, offset int) (Page, error) {
	return s.QueryPage(ctx, query.NewWhereBuilder().Visible().AddMunicipality(municipality), limit, offset)
}

// EnvelopePage pages buildings intersecting env across all municipalities.
func (s *Store) EnvelopePage(ctx context.Context, env query.Envelope, limit, offset int) (Page, error) {
	return s.QueryPage(ctx, query.NewWhereBuilder().Visible().AddEnvelope(env), limit, offset)
}

// GetBuilding returns the row for id within municipality.
func (s *Store) GetBuilding(ctx context.Context, municipality, id string) (Row, bool, error) {
	where := query.NewWhereBuilder().Visible().AddMunicipality(municipality).AddBuildingID(id)
	rows, err := s.Query(ctx, "get_building", query.Single(s.table, where))
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

func toMunicipalities(rows []Row) ([]Municipality, error) {
	result := make([]Municipality, 0, len(rows))
	for _, row := range rows {
		name, ok := row[query.ColumnMunicipality].(string)
		if !ok {
			return nil, &StoreError{Op: "scan", Err: fmt.Errorf("municipality_name is %T", row[query.ColumnMunicipality]),
				msg: "unexpected municipality_name type"}
		}
		count, err := rowInt64(row, query.AliasBuildingCount)
		if err != nil {
			return nil, &StoreError{Op: "scan", Err: err, msg: err.Error()}
		}
		result = append(result, Municipality{Name: name, BuildingCount: count})
	}
	return result, nil
}

// rowInt64 reads an integer aggregate. DuckDB returns COUNT(*) as BIGINT.
func rowInt64(row Row, column string) (int64, error) {
	switch v := row[column].(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("column %s: unexpected type %T", column, v)
	}
}
