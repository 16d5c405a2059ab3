// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"net/http"

	"github.com/tomtom215/footprints/internal/models"
)

// Ping reports that the process is serving.
//
// @Summary Ping
// @Tags Core
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /ping [get]
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.MediaTypeJSON, models.StatusResponse{Status: "ok"})
}

// HealthLive is the liveness probe. It never touches the store.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.MediaTypeJSON, models.StatusResponse{Status: "ok"})
}

// HealthReady opens the store with spatial loaded and returns 503 if that fails.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.StatusResponse "Store is readable"
// @Failure 503 {object} models.StatusResponse "Store is not readable"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondJSON(w, r, http.StatusServiceUnavailable, models.MediaTypeJSON, models.StatusResponse{
			Status:  "not_ready",
			Message: err.Error(),
		})
		return
	}
	respondJSON(w, r, http.StatusOK, models.MediaTypeJSON, models.StatusResponse{Status: "ok"})
}
