// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

// Package middleware provides the chi-compatible HTTP middleware shared by all
// routes: request id propagation, access logging and Prometheus instrumentation.
//
// Ordering in the router matters. RequestID runs first so that AccessLog and
// handler logs carry the id; PrometheusMetrics reads the chi route pattern
// after the handler returns, so it must be mounted on the chi router itself.
package middleware
