// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/footprints/internal/logging"
	"github.com/tomtom215/footprints/internal/models"
)

// respondJSON marshals v and writes it with the given status and media type.
// Marshaling happens before the header is written so a failure still yields
// a clean 500.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, contentType string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", models.MediaTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Vary", "Accept-Encoding")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError maps err to its status and writes the error envelope.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message, details := classify(err)

	event := logging.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.Str("code", code).Str("error", sanitizeLogValue(err.Error())).Msg("API error")

	respondJSON(w, r, status, models.MediaTypeJSON, models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}

// sanitizeLogValue escapes control characters so client input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
