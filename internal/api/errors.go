// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/footprints/internal/database"
	"github.com/tomtom215/footprints/internal/features"
	"github.com/tomtom215/footprints/internal/validation"
)

// Error codes returned in the error envelope.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeStore             = "STORE_ERROR"
	CodeMalformedGeometry = "MALFORMED_GEOMETRY"
	CodeInternal          = "INTERNAL_ERROR"
)

// ErrNotFound indicates the requested collection or item does not exist.
var ErrNotFound = errors.New("not found")

// FieldError is one rejected query parameter.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected query parameter of a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request"
	}
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = f.Message
	}
	return "invalid query parameters: " + strings.Join(messages, "; ")
}

// add records a field failure, keeping the first message per field.
func (e *ValidationError) add(field, message string) {
	for _, f := range e.Fields {
		if f.Field == field {
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// merge appends struct validation failures.
func (e *ValidationError) merge(rve *validation.RequestValidationError) {
	if rve == nil {
		return
	}
	for _, fe := range rve.Errors() {
		e.add(fe.Field(), fe.Error())
	}
}

// errOrNil returns e when it holds failures.
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// details maps field name to message for the error envelope.
func (e *ValidationError) details() map[string]interface{} {
	fields := make(map[string]interface{}, len(e.Fields))
	for _, f := range e.Fields {
		fields[f.Field] = f.Message
	}
	return map[string]interface{}{"fields": fields}
}

// classify returns the HTTP status, error code, client message and details for err.
func classify(err error) (int, string, string, map[string]interface{}) {
	var validationErr *ValidationError
	var storeErr *database.StoreError
	var geomErr *features.MalformedGeometryError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, CodeValidation, validationErr.Error(), validationErr.details()
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, CodeNotFound, err.Error(), nil
	case errors.As(err, &geomErr):
		return http.StatusInternalServerError, CodeMalformedGeometry, geomErr.Error(),
			map[string]interface{}{"id": geomErr.ID}
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError, CodeStore, storeErr.Error(), nil
	default:
		return http.StatusInternalServerError, CodeInternal, "internal server error", nil
	}
}
