// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestNewFeatureCollection_EmptyPage(t *testing.T) {
	t.Parallel()

	fc := NewFeatureCollection(nil, 3, 50, 10, nil)

	if fc.NumberReturned != 0 {
		t.Errorf("NumberReturned = %d, want 0", fc.NumberReturned)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	body := string(data)
	for _, want := range []string{`"features":[]`, `"links":[]`, `"type":"FeatureCollection"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s in %s", want, body)
		}
	}
}

func TestFeatureCollection_FieldOrder(t *testing.T) {
	t.Parallel()

	square := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
	feature := Feature{
		Type:       "Feature",
		ID:         "bldg-1",
		Geometry:   geojson.NewGeometry(square),
		Properties: FeatureProperties{ID: "bldg-1", MunicipalityName: "Delft"},
	}
	fc := NewFeatureCollection([]Feature{feature}, 1, 50, 0,
		[]Link{{Href: "http://x/", Rel: RelSelf, Type: MediaTypeGeoJSON, Title: "Current page"}})

	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	body := string(data)

	order := []string{`"type"`, `"numberMatched"`, `"numberReturned"`, `"limit"`, `"offset"`, `"links"`, `"features"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(body, key)
		if idx <= last {
			t.Fatalf("key %s out of order in %s", key, body)
		}
		last = idx
	}

	if !strings.Contains(body, `"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`) {
		t.Errorf("unexpected geometry encoding: %s", body)
	}
	if !strings.Contains(body, `"properties":{"id":"bldg-1","municipality_name":"Delft"}`) {
		t.Errorf("unexpected properties encoding: %s", body)
	}
}

func TestErrorResponse_Shape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ErrorResponse{Error: APIError{Code: "NOT_FOUND", Message: "missing"}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"error":{"code":"NOT_FOUND","message":"missing"}}` {
		t.Errorf("ErrorResponse = %s", data)
	}
}
