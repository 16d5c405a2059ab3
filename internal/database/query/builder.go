// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

// Package query builds the parameterized SQL run against the buildings table.
//
// Every filter value (municipality name, building id, bbox coordinates,
// limit, offset) is bound as a parameter. The only interpolated text is the
// table name, which config validation restricts to a plain identifier.
package query

import (
	"strings"
)

// Column names of the buildings table written by the ingestion pipeline.
const (
	ColumnID           = "id"
	ColumnMunicipality = "municipality_name"
	ColumnGeometry     = "geometry"
)

// Result column aliases read by the feature mapper.
const (
	AliasID            = "id"
	AliasMunicipality  = "municipality_name"
	AliasGeoJSON       = "geometry_geojson"
	AliasNumberMatched = "number_matched"
	AliasBuildingCount = "building_count"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
//
//	wb := query.NewWhereBuilder().Visible().AddMunicipality("Delft")
//	whereClause, args := wb.Build()
//	// municipality_name IS NOT NULL AND municipality_name = ?
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// Visible restricts to rows the API may expose (non-null municipality).
func (wb *WhereBuilder) Visible() *WhereBuilder {
	return wb.AddClause(ColumnMunicipality + " IS NOT NULL")
}

// AddMunicipality filters on exact municipality name.
func (wb *WhereBuilder) AddMunicipality(name string) *WhereBuilder {
	return wb.AddClause(ColumnMunicipality+" = ?", name)
}

// AddBuildingID filters on the building id. The id column is compared as text
// so string and numeric ids are both matched by the path segment.
func (wb *WhereBuilder) AddBuildingID(id string) *WhereBuilder {
	return wb.AddClause("CAST("+ColumnID+" AS VARCHAR) = ?", id)
}

// AddEnvelope keeps geometries intersecting the axis-aligned rectangle.
// Coordinates are bound as DOUBLE and share the stored geometry's CRS.
func (wb *WhereBuilder) AddEnvelope(env Envelope) *WhereBuilder {
	return wb.AddClause(
		"ST_Intersects("+ColumnGeometry+", ST_MakeEnvelope(?, ?, ?, ?))",
		env.MinX, env.MinY, env.MaxX, env.MaxY,
	)
}

// Build returns the clauses joined with AND, or ("1=1", []) when empty.
// The returned args slice is a copy.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	args := make([]interface{}, len(wb.args))
	copy(args, wb.args)
	return strings.Join(wb.clauses, " AND "), args
}

// BuildWithPrefix returns the WHERE clause with "WHERE " prefix.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

// Count returns the number of clauses added to the builder.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty returns true if no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}
