// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package models

// StatusResponse is the body of /ping and the health probes.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// LandingPage is the body of GET /.
type LandingPage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Links       []Link `json:"links"`
}

// Conformance is the body of GET /conformance.
type Conformance struct {
	ConformsTo []string `json:"conformsTo"`
}

// APIError is a machine-readable error.
type APIError struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// ErrorResponse wraps APIError as {"error": {...}}.
type ErrorResponse struct {
	Error APIError `json:"error"`
}
