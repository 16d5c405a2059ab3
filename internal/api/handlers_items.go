// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/footprints/internal/database"
	"github.com/tomtom215/footprints/internal/features"
	"github.com/tomtom215/footprints/internal/metrics"
	"github.com/tomtom215/footprints/internal/models"
	"github.com/tomtom215/footprints/internal/pagination"
)

// Items pages the buildings of one municipality.
//
// @Summary List items in a collection
// @Description Unknown municipalities yield an empty page
// @Tags Features
// @Produce application/geo+json
// @Param municipality path string true "Municipality name or collection id"
// @Param limit query int false "Page size (1-1000)" default(50)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} models.FeatureCollection
// @Failure 400 {object} models.ErrorResponse "Invalid paging parameters"
// @Failure 500 {object} models.ErrorResponse "Store failure or malformed geometry"
// @Router /collections/{municipality}/items [get]
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	req, err := h.limits.ParsePageRequest(r.URL.Query())
	if err != nil {
		respondError(w, r, err)
		return
	}

	name := pathParam(r, "municipality")
	m, found, err := h.municipality(r.Context(), name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if found {
		name = m.Name
	}

	page, err := h.store.MunicipalityPage(r.Context(), name, req.Limit, req.Offset)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondPage(w, r, "items", page, req)
}

// Item returns one building of a municipality.
//
// @Summary Get item
// @Tags Features
// @Produce application/geo+json
// @Param municipality path string true "Municipality name or collection id"
// @Param building_id path string true "Building id"
// @Success 200 {object} models.Feature
// @Failure 404 {object} models.ErrorResponse "No such building in this municipality"
// @Failure 500 {object} models.ErrorResponse "Store failure or malformed geometry"
// @Router /collections/{municipality}/items/{building_id} [get]
func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	municipality := pathParam(r, "municipality")
	id := pathParam(r, "building_id")

	m, found, err := h.municipality(r.Context(), municipality)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !found {
		respondError(w, r, fmt.Errorf("building %q in %q: %w", id, municipality, ErrNotFound))
		return
	}

	row, found, err := h.store.GetBuilding(r.Context(), m.Name, id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !found {
		respondError(w, r, fmt.Errorf("building %q in %q: %w", id, municipality, ErrNotFound))
		return
	}

	feature, err := features.ToFeature(row)
	if err != nil {
		h.mapperError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.MediaTypeGeoJSON, feature)
}

// BBox pages the buildings intersecting a rectangle across all municipalities.
//
// @Summary Bounding box search
// @Description Coordinates are in the store's coordinate reference system; min must not exceed max on either axis
// @Tags Features
// @Produce application/geo+json
// @Param minx query number true "Minimum x"
// @Param miny query number true "Minimum y"
// @Param maxx query number true "Maximum x"
// @Param maxy query number true "Maximum y"
// @Param limit query int false "Page size (1-1000)" default(50)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} models.FeatureCollection
// @Failure 400 {object} models.ErrorResponse "Invalid coordinates or paging parameters"
// @Failure 500 {object} models.ErrorResponse "Store failure or malformed geometry"
// @Router /buildings/bbox [get]
func (h *Handler) BBox(w http.ResponseWriter, r *http.Request) {
	req, err := h.limits.ParseBBoxRequest(r.URL.Query())
	if err != nil {
		respondError(w, r, err)
		return
	}

	page, err := h.store.EnvelopePage(r.Context(), req.Envelope(), req.Limit, req.Offset)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondPage(w, r, "bbox", page, req.PageRequest)
}

// respondPage maps rows and writes a full feature collection, or an error
// if any row fails to map.
func (h *Handler) respondPage(w http.ResponseWriter, r *http.Request, endpoint string, page database.Page, req PageRequest) {
	mapped, err := features.ToFeatures(page.Rows)
	if err != nil {
		h.mapperError(w, r, err)
		return
	}

	links := pagination.BuildLinks(h.urls.Current(r), page.NumberMatched, req.Limit, req.Offset)
	metrics.RecordPage(endpoint, len(mapped))

	respondJSON(w, r, http.StatusOK, models.MediaTypeGeoJSON,
		models.NewFeatureCollection(mapped, page.NumberMatched, req.Limit, req.Offset, links))
}

func (h *Handler) mapperError(w http.ResponseWriter, r *http.Request, err error) {
	var geomErr *features.MalformedGeometryError
	if errors.As(err, &geomErr) {
		metrics.RecordMalformedGeometry()
	}
	respondError(w, r, err)
}
