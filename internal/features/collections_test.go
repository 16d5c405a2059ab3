// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package features

import (
	"testing"

	"github.com/tomtom215/footprints/internal/database"
	"github.com/tomtom215/footprints/internal/models"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Delft", "Delft"},
		{"Rijswijk", "Rijswijk"},
		{"'s-Gravenhage", "s-Gravenhage"},
		{"'s-Hertogenbosch", "s-Hertogenbosch"},
		{"Bergen op Zoom", "Bergen-op-Zoom"},
		{"Capelle aan den IJssel", "Capelle-aan-den-IJssel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Slug(tt.name); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

// Distinct fixture municipalities must never collide on slug.
func TestSlug_InjectiveOverFixture(t *testing.T) {
	t.Parallel()

	seen := map[string]string{}
	for _, b := range database.DefaultFixture() {
		if b.Municipality == "" {
			continue
		}
		slug := Slug(b.Municipality)
		if other, ok := seen[slug]; ok && other != b.Municipality {
			t.Errorf("slug %q shared by %q and %q", slug, other, b.Municipality)
		}
		seen[slug] = b.Municipality
	}
	if len(seen) != 2 {
		t.Errorf("fixture municipalities = %d, want 2", len(seen))
	}
}

func TestNewCollection(t *testing.T) {
	t.Parallel()

	c := NewCollection(database.Municipality{Name: "'s-Gravenhage", BuildingCount: 12},
		"http://localhost:8000/collections/%27s-Gravenhage/items")

	if c.ID != "s-Gravenhage" {
		t.Errorf("ID = %q", c.ID)
	}
	if c.Title != "Buildings in 's-Gravenhage" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Description != "Building footprints for 's-Gravenhage municipality" {
		t.Errorf("Description = %q", c.Description)
	}
	if c.ItemType != "feature" || c.BuildingCount != 12 {
		t.Errorf("collection = %+v", c)
	}
	if len(c.Links) != 1 || c.Links[0].Rel != models.RelItems || c.Links[0].Type != models.MediaTypeGeoJSON {
		t.Errorf("links = %+v", c.Links)
	}
}
