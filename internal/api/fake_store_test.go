// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/footprints/internal/config"
	"github.com/tomtom215/footprints/internal/database"
	"github.com/tomtom215/footprints/internal/database/query"
)

type fakeBuilding struct {
	id           string
	municipality string // "" stands for NULL
	geojson      string
}

// fakeStore evaluates the building queries in memory. Envelope tests use
// geometry bounds, which is exact for the rectangular fixture shapes.
type fakeStore struct {
	mu        sync.Mutex
	buildings []fakeBuilding
	err       error
	pingErr   error
	calls     int
}

func square(minX, minY, maxX, maxY float64) string {
	ring := orb.Ring{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY}}
	data, err := geojson.NewGeometry(orb.Polygon{ring}).MarshalJSON()
	if err != nil {
		panic(err)
	}
	return string(data)
}

// newFakeStore mirrors database.DefaultFixture: 3 Delft, 2 Rijswijk and one
// building without municipality.
func newFakeStore() *fakeStore {
	return &fakeStore{buildings: []fakeBuilding{
		{"bldg-delft-0001", "Delft", square(84000, 447000, 84020, 447020)},
		{"bldg-delft-0002", "Delft", square(84100, 447000, 84130, 447025)},
		{"bldg-delft-0003", "Delft", `{"type":"MultiPolygon","coordinates":[[[[84300,447300],[84310,447300],[84310,447310],[84300,447310],[84300,447300]]],[[[84320,447300],[84330,447300],[84330,447310],[84320,447310],[84320,447300]]]]}`},
		{"bldg-rijswijk-0001", "Rijswijk", square(81000, 451000, 81015, 451015)},
		{"bldg-rijswijk-0002", "Rijswijk", square(81050, 451050, 81070, 451070)},
		{"bldg-unassigned-0001", "", square(85000, 446000, 85010, 446010)},
	}}
}

func (s *fakeStore) enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *fakeStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *fakeStore) Ping(ctx context.Context) error {
	return s.pingErr
}

func (s *fakeStore) ListMunicipalities(ctx context.Context) ([]database.Municipality, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	counts := map[string]int64{}
	for _, b := range s.buildings {
		if b.municipality != "" {
			counts[b.municipality]++
		}
	}
	list := make([]database.Municipality, 0, len(counts))
	for name, n := range counts {
		list = append(list, database.Municipality{Name: name, BuildingCount: n})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].BuildingCount != list[j].BuildingCount {
			return list[i].BuildingCount > list[j].BuildingCount
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (s *fakeStore) GetMunicipality(ctx context.Context, name string) (database.Municipality, bool, error) {
	list, err := s.ListMunicipalities(ctx)
	if err != nil {
		return database.Municipality{}, false, err
	}
	for _, m := range list {
		if m.Name == name {
			return m, true, nil
		}
	}
	return database.Municipality{}, false, nil
}

func (s *fakeStore) MunicipalityPage(ctx context.Context, municipality string, limit, offset int) (database.Page, error) {
	return s.page(func(b fakeBuilding) bool { return b.municipality == municipality }, limit, offset)
}

func (s *fakeStore) EnvelopePage(ctx context.Context, env query.Envelope, limit, offset int) (database.Page, error) {
	box := orb.Bound{Min: orb.Point{env.MinX, env.MinY}, Max: orb.Point{env.MaxX, env.MaxY}}
	return s.page(func(b fakeBuilding) bool {
		g, err := geojson.UnmarshalGeometry([]byte(b.geojson))
		if err != nil {
			return true // surface malformed rows to the mapper
		}
		return g.Geometry().Bound().Intersects(box)
	}, limit, offset)
}

func (s *fakeStore) GetBuilding(ctx context.Context, municipality, id string) (database.Row, bool, error) {
	if err := s.enter(); err != nil {
		return nil, false, err
	}
	for _, b := range s.buildings {
		if b.municipality != "" && b.municipality == municipality && b.id == id {
			return b.row(), true, nil
		}
	}
	return nil, false, nil
}

func (s *fakeStore) page(match func(fakeBuilding) bool, limit, offset int) (database.Page, error) {
	if err := s.enter(); err != nil {
		return database.Page{}, err
	}
	var matched []fakeBuilding
	for _, b := range s.buildings {
		if b.municipality != "" && match(b) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].id < matched[j].id })

	rows := []database.Row{}
	for i := offset; i < len(matched) && i-offset < limit; i++ {
		rows = append(rows, matched[i].row())
	}
	return database.Page{NumberMatched: int64(len(matched)), Rows: rows}, nil
}

func (b fakeBuilding) row() database.Row {
	return database.Row{
		query.AliasID:           b.id,
		query.AliasMunicipality: b.municipality,
		query.AliasGeoJSON:      b.geojson,
	}
}

// testConfig returns defaults with rate limiting off.
func testConfig() *config.Config {
	return &config.Config{
		API:      config.APIConfig{DefaultPageSize: config.DefaultPageSize, MaxPageSize: config.MaxPageSize},
		Security: config.SecurityConfig{CORSOrigins: []string{"*"}, RateLimitDisabled: true},
	}
}

// newTestServer returns the full router over store.
func newTestServer(t *testing.T, store BuildingStore, cfg *config.Config) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	h, err := NewHandler(store, cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return NewRouter(h, NewChiMiddleware(NewChiMiddlewareConfig(cfg.Security))).SetupChi()
}
