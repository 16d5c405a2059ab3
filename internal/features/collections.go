// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package features

import (
	"strings"

	"github.com/tomtom215/footprints/internal/database"
	"github.com/tomtom215/footprints/internal/models"
)

var slugReplacer = strings.NewReplacer("'", "", " ", "-")

// Slug derives a collection id: apostrophes removed, spaces become hyphens.
//
//	Slug("'s-Gravenhage") == "s-Gravenhage"
//	Slug("Bergen op Zoom") == "Bergen-op-Zoom"
func Slug(name string) string {
	return slugReplacer.Replace(name)
}

// NewCollection builds the collection for m. itemsHref is the absolute URL
// of its items listing.
func NewCollection(m database.Municipality, itemsHref string) models.Collection {
	return models.Collection{
		ID:            Slug(m.Name),
		Title:         "Buildings in " + m.Name,
		Description:   "Building footprints for " + m.Name + " municipality",
		ItemType:      "feature",
		BuildingCount: m.BuildingCount,
		Links: []models.Link{{
			Href:  itemsHref,
			Rel:   models.RelItems,
			Type:  models.MediaTypeGeoJSON,
			Title: "Items in " + m.Name,
		}},
	}
}
