// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/footprints/internal/config"
	"github.com/tomtom215/footprints/internal/database"
	"github.com/tomtom215/footprints/internal/models"
)

// newDuckDBServer serves the seeded fixture from a real DuckDB file.
func newDuckDBServer(t *testing.T) http.Handler {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping DuckDB integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	path := filepath.Join(t.TempDir(), "buildings_database.db")
	if err := database.SeedFixture(ctx, path, "overture_buildings", database.DefaultFixture()); err != nil {
		if errors.Is(err, database.ErrSpatialUnavailable) {
			t.Skipf("spatial extension unavailable: %v", err)
		}
		t.Fatalf("SeedFixture() error = %v", err)
	}

	store, err := database.New(&config.DatabaseConfig{Path: path, Table: "overture_buildings", MaxMemory: "256MB"})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	return newTestServer(t, store, nil)
}

func TestIntegration_FixtureExample(t *testing.T) {
	h := newDuckDBServer(t)

	var collections models.CollectionsResponse
	decode(t, doGet(t, h, "/collections"), &collections)
	if len(collections.Collections) != 2 ||
		collections.Collections[0].ID != "Delft" || collections.Collections[0].BuildingCount != 3 ||
		collections.Collections[1].ID != "Rijswijk" || collections.Collections[1].BuildingCount != 2 {
		t.Fatalf("collections = %+v", collections.Collections)
	}

	w := doGet(t, h, "/collections/Delft/items?limit=2&offset=0")
	if w.Code != http.StatusOK {
		t.Fatalf("items status = %d, body %s", w.Code, w.Body.String())
	}
	var page models.FeatureCollection
	decode(t, w, &page)
	if page.NumberMatched != 3 || page.NumberReturned != 2 {
		t.Errorf("matched=%d returned=%d", page.NumberMatched, page.NumberReturned)
	}
	next, ok := findLink(page.Links, models.RelNext)
	if !ok || linkOffset(t, next) != 2 {
		t.Errorf("next = %+v", next)
	}
	if _, ok := findLink(page.Links, models.RelPrev); ok {
		t.Error("unexpected prev link")
	}
	if page.Features[0].ID != "bldg-delft-0001" || page.Features[1].ID != "bldg-delft-0002" {
		t.Errorf("order = %s, %s", page.Features[0].ID, page.Features[1].ID)
	}
}

func TestIntegration_ItemAndBBox(t *testing.T) {
	h := newDuckDBServer(t)

	var f models.Feature
	w := doGet(t, h, "/collections/Delft/items/bldg-delft-0003")
	if w.Code != http.StatusOK {
		t.Fatalf("item status = %d, body %s", w.Code, w.Body.String())
	}
	decode(t, w, &f)
	if f.Properties.ID != "bldg-delft-0003" || f.Properties.MunicipalityName != "Delft" || f.Geometry.Type != "MultiPolygon" {
		t.Errorf("feature = %+v (%s)", f.Properties, f.Geometry.Type)
	}

	if w := doGet(t, h, "/collections/Delft/items/bldg-delft-9999"); w.Code != http.StatusNotFound {
		t.Errorf("missing item status = %d, want 404", w.Code)
	}

	var page models.FeatureCollection
	decode(t, doGet(t, h, "/buildings/bbox?minx=83990&miny=446990&maxx=84030&maxy=447030"), &page)
	if page.NumberMatched != 1 || len(page.Features) != 1 || page.Features[0].ID != "bldg-delft-0001" {
		t.Errorf("contained bbox = %d matched, features %+v", page.NumberMatched, page.Features)
	}

	decode(t, doGet(t, h, "/buildings/bbox?minx=0&miny=0&maxx=10&maxy=10"), &page)
	if page.NumberMatched != 0 || len(page.Features) != 0 {
		t.Errorf("disjoint bbox = %d matched", page.NumberMatched)
	}

	if w := doGet(t, h, "/health/ready"); w.Code != http.StatusOK {
		t.Errorf("ready = %d, body %s", w.Code, w.Body.String())
	}
}
