// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/footprints/internal/config"
	"github.com/tomtom215/footprints/internal/database/query"
	"github.com/tomtom215/footprints/internal/pagination"
	"github.com/tomtom215/footprints/internal/validation"
)

// PageRequest holds the paging parameters shared by all item listings.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=1000"`
	Offset int `query:"offset" validate:"min=0"`
}

// BBoxRequest holds a bounding box search.
type BBoxRequest struct {
	PageRequest
	MinX float64 `query:"minx" validate:"finite"`
	MinY float64 `query:"miny" validate:"finite"`
	MaxX float64 `query:"maxx" validate:"finite,gtefield=MinX"`
	MaxY float64 `query:"maxy" validate:"finite,gtefield=MinY"`
}

// Envelope returns the validated box.
func (b BBoxRequest) Envelope() query.Envelope {
	return query.Envelope{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}

// pageLimits are the configured page size bounds.
type pageLimits struct {
	defaultSize int
	maxSize     int
}

func newPageLimits(cfg config.APIConfig) pageLimits {
	limits := pageLimits{defaultSize: cfg.DefaultPageSize, maxSize: cfg.MaxPageSize}
	if limits.maxSize <= 0 || limits.maxSize > config.MaxPageSize {
		limits.maxSize = config.MaxPageSize
	}
	if limits.defaultSize <= 0 || limits.defaultSize > limits.maxSize {
		limits.defaultSize = min(config.DefaultPageSize, limits.maxSize)
	}
	return limits
}

// parsePage reads limit and offset into req, collecting failures in verr.
func (l pageLimits) parsePage(q url.Values, verr *ValidationError) PageRequest {
	return PageRequest{
		Limit:  intParam(q, pagination.ParamLimit, l.defaultSize, verr),
		Offset: intParam(q, pagination.ParamOffset, 0, verr),
	}
}

// checkMax enforces a configured maximum below the hard bound.
func (l pageLimits) checkMax(req PageRequest, verr *ValidationError) {
	if req.Limit > l.maxSize {
		verr.add(pagination.ParamLimit, fmt.Sprintf("limit must be at most %d", l.maxSize))
	}
}

// ParsePageRequest validates limit and offset.
func (l pageLimits) ParsePageRequest(q url.Values) (PageRequest, error) {
	verr := &ValidationError{}
	req := l.parsePage(q, verr)
	validateInto(req, verr)
	l.checkMax(req, verr)
	return req, verr.errOrNil()
}

// ParseBBoxRequest validates the four required coordinates plus paging.
func (l pageLimits) ParseBBoxRequest(q url.Values) (BBoxRequest, error) {
	verr := &ValidationError{}
	req := BBoxRequest{
		PageRequest: l.parsePage(q, verr),
		MinX:        floatParam(q, "minx", verr),
		MinY:        floatParam(q, "miny", verr),
		MaxX:        floatParam(q, "maxx", verr),
		MaxY:        floatParam(q, "maxy", verr),
	}
	validateInto(req, verr)
	l.checkMax(req.PageRequest, verr)
	return req, verr.errOrNil()
}

// validateInto runs struct validation once every parameter has parsed, so a
// malformed value is reported only with its parse message.
func validateInto(s interface{}, verr *ValidationError) {
	if len(verr.Fields) > 0 {
		return
	}
	verr.merge(validation.ValidateStruct(s))
}

func intParam(q url.Values, name string, def int, verr *ValidationError) int {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		verr.add(name, name+" must be an integer")
		return def
	}
	return v
}

func floatParam(q url.Values, name string, verr *ValidationError) float64 {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		verr.add(name, name+" is required")
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		verr.add(name, name+" must be a number")
		return 0
	}
	return v
}
