// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package features

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/footprints/internal/database"
	"github.com/tomtom215/footprints/internal/database/query"
	"github.com/tomtom215/footprints/internal/models"
)

// MalformedGeometryError reports stored geometry that does not decode into a
// polygonal GeoJSON geometry. It is a store-side data defect.
type MalformedGeometryError struct {
	ID  string
	Err error
}

func (e *MalformedGeometryError) Error() string {
	return fmt.Sprintf("malformed geometry for building %s: %v", e.ID, e.Err)
}

func (e *MalformedGeometryError) Unwrap() error {
	return e.Err
}

// ErrMissingColumn is returned when a row lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// ToFeature converts one row holding id, municipality_name and
// geometry_geojson into a Feature.
func ToFeature(row database.Row) (models.Feature, error) {
	id, err := idString(row[query.AliasID])
	if err != nil {
		return models.Feature{}, err
	}

	municipality, ok := row[query.AliasMunicipality].(string)
	if !ok {
		return models.Feature{}, fmt.Errorf("%w %s for building %s", ErrMissingColumn, query.AliasMunicipality, id)
	}

	geometry, err := parseGeometry(row[query.AliasGeoJSON])
	if err != nil {
		return models.Feature{}, &MalformedGeometryError{ID: id, Err: err}
	}

	return models.Feature{
		Type:     "Feature",
		ID:       id,
		Geometry: geometry,
		Properties: models.FeatureProperties{
			ID:               id,
			MunicipalityName: municipality,
		},
	}, nil
}

// ToFeatures maps rows in order. The first failure aborts the page.
func ToFeatures(rows []database.Row) ([]models.Feature, error) {
	result := make([]models.Feature, 0, len(rows))
	for _, row := range rows {
		f, err := ToFeature(row)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, nil
}

func idString(v interface{}) (string, error) {
	switch id := v.(type) {
	case string:
		if id != "" {
			return id, nil
		}
	case int64:
		return strconv.FormatInt(id, 10), nil
	case int32:
		return strconv.FormatInt(int64(id), 10), nil
	case uint64:
		return strconv.FormatUint(id, 10), nil
	}
	return "", fmt.Errorf("%w %s (got %T)", ErrMissingColumn, query.AliasID, v)
}

func parseGeometry(v interface{}) (*geojson.Geometry, error) {
	var raw []byte
	switch g := v.(type) {
	case string:
		raw = []byte(g)
	case []byte:
		raw = g
	case nil:
		return nil, errors.New("geometry is NULL")
	default:
		return nil, fmt.Errorf("geometry has type %T, want GeoJSON text", v)
	}

	geometry, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, err
	}
	if err := checkPolygonal(geometry.Geometry()); err != nil {
		return nil, err
	}
	return geometry, nil
}

// checkPolygonal accepts non-empty polygons and multipolygons whose rings
// are closed and have at least four positions.
func checkPolygonal(g orb.Geometry) error {
	switch geom := g.(type) {
	case orb.Polygon:
		return checkPolygon(geom)
	case orb.MultiPolygon:
		if len(geom) == 0 {
			return errors.New("empty multipolygon")
		}
		for i, p := range geom {
			if err := checkPolygon(p); err != nil {
				return fmt.Errorf("polygon %d: %w", i, err)
			}
		}
		return nil
	case nil:
		return errors.New("geometry has no coordinates")
	default:
		return fmt.Errorf("unsupported geometry type %s", g.GeoJSONType())
	}
}

func checkPolygon(p orb.Polygon) error {
	if len(p) == 0 {
		return errors.New("empty polygon")
	}
	for i, ring := range p {
		if len(ring) < 4 {
			return fmt.Errorf("ring %d has %d positions, want at least 4", i, len(ring))
		}
		if !ring.Closed() {
			return fmt.Errorf("ring %d is not closed", i)
		}
	}
	return nil
}
