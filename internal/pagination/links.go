// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

// Package pagination builds OGC API paging links for offset/limit listings.
//
// Links are derived from the incoming request URL. Only offset and limit are
// rewritten; all other query parameters carry over unchanged.
package pagination

import (
	"net/url"
	"strconv"

	"github.com/tomtom215/footprints/internal/models"
)

// Query parameter names.
const (
	ParamLimit  = "limit"
	ParamOffset = "offset"
)

// BuildLinks returns self, plus next when offset+limit < total, plus prev
// when offset > 0. current must be the absolute request URL; limit must
// already be within the configured bounds.
func BuildLinks(current *url.URL, total int64, limit, offset int) []models.Link {
	links := []models.Link{{
		Href:  current.String(),
		Rel:   models.RelSelf,
		Type:  models.MediaTypeGeoJSON,
		Title: "Current page",
	}}

	// offset+limit < total, written so that it cannot overflow.
	if int64(offset) < total && int64(limit) < total-int64(offset) {
		links = append(links, models.Link{
			Href:  withPage(current, limit, offset+limit),
			Rel:   models.RelNext,
			Type:  models.MediaTypeGeoJSON,
			Title: "Next page",
		})
	}

	if offset > 0 {
		links = append(links, models.Link{
			Href:  withPage(current, limit, max(0, offset-limit)),
			Rel:   models.RelPrev,
			Type:  models.MediaTypeGeoJSON,
			Title: "Previous page",
		})
	}

	return links
}

// withPage copies u with limit and offset set. Repeated values of other
// parameters are kept.
func withPage(u *url.URL, limit, offset int) string {
	params := u.Query()
	params.Set(ParamLimit, strconv.Itoa(limit))
	params.Set(ParamOffset, strconv.Itoa(offset))

	next := *u
	next.RawQuery = params.Encode()
	return next.String()
}
