// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/footprints/internal/middleware"
	"github.com/tomtom215/footprints/internal/models"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil mw uses default middleware settings.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// SetupChi returns the complete HTTP handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, outermost first.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(chimiddleware.Compress(5, models.MediaTypeJSON, models.MediaTypeGeoJSON))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, fmt.Errorf("route %s: %w", req.URL.Path, ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, req, http.StatusMethodNotAllowed, models.MediaTypeJSON, models.ErrorResponse{
			Error: models.APIError{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
		})
	})

	// Probes and metrics are exempt from rate limiting.
	r.Get("/ping", router.handler.Ping)
	r.Get("/health/live", router.handler.HealthLive)
	r.Get("/health/ready", router.handler.HealthReady)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("doc.json")))

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/", router.handler.Landing)
		r.Get("/conformance", router.handler.Conformance)

		r.Route("/collections", func(r chi.Router) {
			r.Get("/", router.handler.Collections)
			r.Get("/{municipality}", router.handler.Collection)
			r.Get("/{municipality}/items", router.handler.Items)
			r.Get("/{municipality}/items/{building_id}", router.handler.Item)
		})

		r.Get("/buildings/bbox", router.handler.BBox)
	})

	return r
}
