// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/footprints/internal/database"
	"github.com/tomtom215/footprints/internal/features"
	"github.com/tomtom215/footprints/internal/models"
)

// Conformance classes implemented by this service.
var conformanceClasses = []string{
	"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core",
	"http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/geojson",
}

// Landing serves the service root.
//
// @Summary Landing page
// @Description Service title and links to conformance, collections and the API documentation
// @Tags Core
// @Produce json
// @Success 200 {object} models.LandingPage
// @Router / [get]
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.MediaTypeJSON, models.LandingPage{
		Title:       "Building footprints",
		Description: "Building footprint features grouped by municipality",
		Links: []models.Link{
			{Href: h.urls.Current(r).String(), Rel: models.RelSelf, Type: models.MediaTypeJSON, Title: "This document"},
			{Href: h.urls.Resolve(r, "conformance"), Rel: models.RelConformance, Type: models.MediaTypeJSON, Title: "Conformance classes"},
			{Href: h.urls.Resolve(r, "collections"), Rel: models.RelData, Type: models.MediaTypeJSON, Title: "Collections"},
			{Href: h.urls.Resolve(r, "swagger", "index.html"), Rel: models.RelServiceDoc, Type: "text/html", Title: "API documentation"},
		},
	})
}

// Conformance lists the implemented conformance classes.
//
// @Summary Conformance classes
// @Tags Core
// @Produce json
// @Success 200 {object} models.Conformance
// @Router /conformance [get]
func (h *Handler) Conformance(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.MediaTypeJSON, models.Conformance{ConformsTo: conformanceClasses})
}

// Collections lists one collection per municipality, largest first.
//
// @Summary List collections
// @Description One collection per distinct municipality, ordered by building count descending
// @Tags Collections
// @Produce json
// @Success 200 {object} models.CollectionsResponse
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /collections [get]
func (h *Handler) Collections(w http.ResponseWriter, r *http.Request) {
	municipalities, err := h.store.ListMunicipalities(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	collections := make([]models.Collection, 0, len(municipalities))
	for _, m := range municipalities {
		collections = append(collections, h.collection(r, m))
	}

	respondJSON(w, r, http.StatusOK, models.MediaTypeJSON, models.CollectionsResponse{
		Collections: collections,
		Links: []models.Link{{
			Href:  h.urls.Current(r).String(),
			Rel:   models.RelSelf,
			Type:  models.MediaTypeJSON,
			Title: "This document",
		}},
	})
}

// Collection returns the metadata of one municipality.
//
// @Summary Get collection
// @Tags Collections
// @Produce json
// @Param municipality path string true "Municipality name or collection id"
// @Success 200 {object} models.Collection
// @Failure 404 {object} models.ErrorResponse "No buildings for this municipality"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /collections/{municipality} [get]
func (h *Handler) Collection(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "municipality")

	m, found, err := h.municipality(r.Context(), name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !found {
		respondError(w, r, fmt.Errorf("collection %q: %w", name, ErrNotFound))
		return
	}

	respondJSON(w, r, http.StatusOK, models.MediaTypeJSON, h.collection(r, m))
}

func (h *Handler) collection(r *http.Request, m database.Municipality) models.Collection {
	return features.NewCollection(m, h.urls.Resolve(r, "collections", m.Name, "items"))
}
