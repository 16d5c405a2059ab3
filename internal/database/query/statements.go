// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package query

import (
	"fmt"
)

// Envelope is a bbox in the store's native coordinate reference system.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Statement is SQL text plus its bound arguments.
type Statement struct {
	SQL  string
	Args []interface{}
}

// PagedQuery is a count and a data statement that share one predicate, so
// numberMatched and the returned page always describe the same filter.
type PagedQuery struct {
	Count Statement
	Data  Statement
}

// featureColumns selects what the feature mapper needs. Geometry travels as
// GeoJSON text rather than the native GEOMETRY blob.
func featureColumns() string {
	return fmt.Sprintf(
		"CAST(%s AS VARCHAR) AS %s, %s AS %s, CAST(ST_AsGeoJSON(%s) AS VARCHAR) AS %s",
		ColumnID, AliasID,
		ColumnMunicipality, AliasMunicipality,
		ColumnGeometry, AliasGeoJSON,
	)
}

// Paged builds the aligned count/data pair for one page. Data rows are
// ordered by id so consecutive pages never overlap or skip rows.
func Paged(table string, where *WhereBuilder, limit, offset int) PagedQuery {
	whereClause, countArgs := where.BuildWithPrefix()
	_, dataArgs := where.Build()
	dataArgs = append(dataArgs, limit, offset)

	return PagedQuery{
		Count: Statement{
			SQL:  fmt.Sprintf("SELECT COUNT(*) AS %s FROM %s %s", AliasNumberMatched, table, whereClause),
			Args: countArgs,
		},
		Data: Statement{
			SQL: fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s LIMIT ? OFFSET ?",
				featureColumns(), table, whereClause, ColumnID),
			Args: dataArgs,
		},
	}
}

// Single builds a data statement returning at most one matching row.
func Single(table string, where *WhereBuilder) Statement {
	whereClause, args := where.BuildWithPrefix()
	return Statement{
		SQL: fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s LIMIT 1",
			featureColumns(), table, whereClause, ColumnID),
		Args: args,
	}
}

// Municipalities aggregates visible rows per municipality, largest first.
// Equal counts fall back to name order.
func Municipalities(table string, where *WhereBuilder) Statement {
	whereClause, args := where.BuildWithPrefix()
	return Statement{
		SQL: fmt.Sprintf(
			"SELECT %s, COUNT(*) AS %s FROM %s %s GROUP BY %s ORDER BY %s DESC, %s",
			ColumnMunicipality, AliasBuildingCount, table, whereClause,
			ColumnMunicipality, AliasBuildingCount, ColumnMunicipality,
		),
		Args: args,
	}
}
