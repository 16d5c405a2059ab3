// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

// Package metrics holds the Prometheus collectors exposed on /metrics.
// Collectors register with the default registry at package init.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB store queries in seconds, including connection setup",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	StoreQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of failed DuckDB store queries",
		},
		[]string{"operation"},
	)

	StoreConnectionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "duckdb_connections_open",
			Help: "Number of per-query read-only connections currently open",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of active API requests",
		},
	)

	// Feature Metrics
	FeaturesReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "features_returned_per_page",
			Help:    "Number of features returned per page",
			Buckets: []float64{0, 1, 10, 50, 100, 250, 500, 1000},
		},
		[]string{"endpoint"},
	)

	StoreReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_ready",
			Help: "1 when the last store probe succeeded, 0 otherwise",
		},
	)

	MalformedGeometries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "malformed_geometries_total",
			Help: "Stored geometries that failed to decode as GeoJSON",
		},
	)
)

// RecordStoreQuery records the duration and outcome of one store query.
func RecordStoreQuery(operation string, duration time.Duration, err error) {
	StoreQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		StoreQueryErrors.WithLabelValues(operation).Inc()
	}
}

// TrackStoreConnection adjusts the open connection gauge.
func TrackStoreConnection(open bool) {
	if open {
		StoreConnectionsOpen.Inc()
	} else {
		StoreConnectionsOpen.Dec()
	}
}

// RecordAPIRequest records API request metrics. endpoint must be a route
// pattern, not a raw path, to keep label cardinality bounded.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordPage records the size of a returned feature page.
func RecordPage(endpoint string, numberReturned int) {
	FeaturesReturned.WithLabelValues(endpoint).Observe(float64(numberReturned))
}

// RecordMalformedGeometry counts a geometry decode failure.
func RecordMalformedGeometry() {
	MalformedGeometries.Inc()
}

// SetStoreReady records the outcome of the last store probe.
func SetStoreReady(ready bool) {
	if ready {
		StoreReady.Set(1)
	} else {
		StoreReady.Set(0)
	}
}
