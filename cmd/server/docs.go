// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

// @title Footprints API
// @version 1.0
// @description Read-only OGC API Features style access to building footprints grouped by municipality.
// @description
// @description ## Paging
// @description
// @description Item listings take `limit` (1-1000, default 50) and `offset` (default 0).
// @description Pages carry `self`, `next` and `prev` links that preserve all other query parameters.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {"error": {"code": "VALIDATION_ERROR", "message": "...", "details": {}, "request_id": "..."}}
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/footprints/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Landing page, conformance and health probes
//
// @tag.name Collections
// @tag.description One collection per municipality
//
// @tag.name Features
// @tag.description Building footprints as GeoJSON features
package main
