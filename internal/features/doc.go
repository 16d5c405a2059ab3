// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

// Package features maps store rows to API entities: building rows to GeoJSON
// features, municipality aggregates to collections.
//
// Mapping is side-effect free. Rows are read by column name, so the select
// list order of a query is irrelevant.
package features
