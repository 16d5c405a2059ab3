// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package database

import (
	"errors"
	"io"
	"strings"

	"github.com/tomtom215/footprints/internal/logging"
)

// ErrSpatialUnavailable marks failures to install or load the spatial extension.
var ErrSpatialUnavailable = errors.New("spatial extension unavailable")

// StoreError is the single failure type for anything that goes wrong while
// reaching or querying the store.
type StoreError struct {
	// Op names the failing step: open, connect, load_spatial, query, scan.
	Op  string
	Err error

	// msg is the cause with the database path removed.
	msg string
}

func (e *StoreError) Error() string {
	msg := e.msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return "store: " + e.Op + ": " + msg
}

// Unwrap returns the underlying driver error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// newStoreError wraps err, scrubbing the database path from its message so
// responses never disclose filesystem layout.
func newStoreError(op, path string, err error) *StoreError {
	msg := err.Error()
	if path != "" {
		msg = strings.ReplaceAll(msg, path, "<store>")
	}
	return &StoreError{Op: op, Err: err, msg: msg}
}

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
