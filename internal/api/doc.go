// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

/*
Package api provides the HTTP surface of the building footprint service.

Routes are served by a chi router (see SetupChi):

	GET /                                             landing page
	GET /conformance                                  conformance classes
	GET /ping                                         liveness ping
	GET /health/live                                  liveness probe
	GET /health/ready                                 readiness probe (opens the store)
	GET /collections                                  one collection per municipality
	GET /collections/{municipality}                   single collection metadata
	GET /collections/{municipality}/items             paged features of a municipality
	GET /collections/{municipality}/items/{building_id}
	GET /buildings/bbox?minx&miny&maxx&maxy           paged features intersecting a box
	GET /metrics                                      Prometheus exposition
	GET /swagger/*                                    API documentation

{municipality} is the exact municipality name or its collection id (slug).

Error Mapping:

Handlers return typed errors which respondError maps to a status:

	*ValidationError                  400 VALIDATION_ERROR
	ErrNotFound                       404 NOT_FOUND
	*database.StoreError              500 STORE_ERROR
	*features.MalformedGeometryError  500 MALFORMED_GEOMETRY
	anything else                     500 INTERNAL_ERROR

Validation happens before any store query runs. Pages are never truncated by
an internal fault: either the whole page is returned or an error is.
*/
package api
