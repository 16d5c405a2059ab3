// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package models

import (
	"github.com/paulmach/orb/geojson"
)

// Media types used in links and responses.
const (
	MediaTypeGeoJSON = "application/geo+json"
	MediaTypeJSON    = "application/json"
)

// Link relations.
const (
	RelSelf        = "self"
	RelNext        = "next"
	RelPrev        = "prev"
	RelItems       = "items"
	RelData        = "data"
	RelConformance = "conformance"
	RelServiceDoc  = "service-doc"
)

// Link is an OGC API hypermedia link.
type Link struct {
	Href  string `json:"href"`
	Rel   string `json:"rel"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// FeatureProperties is the flat property set of a building feature.
type FeatureProperties struct {
	ID               string `json:"id"`
	MunicipalityName string `json:"municipality_name"`
}

// Feature is the GeoJSON projection of one building row.
type Feature struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Geometry   *geojson.Geometry `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// FeatureCollection is one page of features.
// Invariant: NumberReturned == len(Features) <= Limit.
type FeatureCollection struct {
	Type           string    `json:"type"`
	NumberMatched  int64     `json:"numberMatched"`
	NumberReturned int       `json:"numberReturned"`
	Limit          int       `json:"limit"`
	Offset         int       `json:"offset"`
	Links          []Link    `json:"links"`
	Features       []Feature `json:"features"`
}

// NewFeatureCollection builds a page and derives NumberReturned.
func NewFeatureCollection(features []Feature, numberMatched int64, limit, offset int, links []Link) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	if links == nil {
		links = []Link{}
	}
	return FeatureCollection{
		Type:           "FeatureCollection",
		NumberMatched:  numberMatched,
		NumberReturned: len(features),
		Limit:          limit,
		Offset:         offset,
		Links:          links,
		Features:       features,
	}
}

// Collection describes one municipality.
type Collection struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ItemType      string `json:"itemType"`
	BuildingCount int64  `json:"building_count"`
	Links         []Link `json:"links"`
}

// CollectionsResponse is the body of GET /collections.
type CollectionsResponse struct {
	Collections []Collection `json:"collections"`
	Links       []Link       `json:"links"`
}
