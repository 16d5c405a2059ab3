// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/footprints/internal/config"
	"github.com/tomtom215/footprints/internal/database"
	"github.com/tomtom215/footprints/internal/database/query"
	"github.com/tomtom215/footprints/internal/features"
	"github.com/tomtom215/footprints/internal/pagination"
)

// BuildingStore is the read side of the building store used by handlers.
// *database.Store implements it.
type BuildingStore interface {
	Ping(ctx context.Context) error
	ListMunicipalities(ctx context.Context) ([]database.Municipality, error)
	GetMunicipality(ctx context.Context, name string) (database.Municipality, bool, error)
	MunicipalityPage(ctx context.Context, municipality string, limit, offset int) (database.Page, error)
	EnvelopePage(ctx context.Context, env query.Envelope, limit, offset int) (database.Page, error)
	GetBuilding(ctx context.Context, municipality, id string) (database.Row, bool, error)
}

var _ BuildingStore = (*database.Store)(nil)

// Handler serves all API endpoints.
type Handler struct {
	store     BuildingStore
	urls      pagination.URLBuilder
	limits    pageLimits
	startTime time.Time
}

// NewHandler creates a handler backed by store.
func NewHandler(store BuildingStore, cfg *config.Config) (*Handler, error) {
	if store == nil {
		return nil, fmt.Errorf("building store is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	urls, err := pagination.NewURLBuilder(cfg.Server.PublicURL, cfg.Server.TrustForwardedHeaders)
	if err != nil {
		return nil, fmt.Errorf("invalid public url: %w", err)
	}

	return &Handler{
		store:     store,
		urls:      urls,
		limits:    newPageLimits(cfg.API),
		startTime: time.Now(),
	}, nil
}

// pathParam returns a decoded chi URL parameter. chi routes on RawPath when
// the request carries one, which leaves parameters escaped.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// municipality resolves a path segment to a stored municipality, matching the
// exact name first and then the collection id (slug).
func (h *Handler) municipality(ctx context.Context, segment string) (database.Municipality, bool, error) {
	m, found, err := h.store.GetMunicipality(ctx, segment)
	if err != nil || found {
		return m, found, err
	}

	list, err := h.store.ListMunicipalities(ctx)
	if err != nil {
		return database.Municipality{}, false, err
	}
	for _, m := range list {
		if features.Slug(m.Name) == segment {
			return m, true, nil
		}
	}
	return database.Municipality{}, false, nil
}
