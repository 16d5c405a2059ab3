// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

// Package models defines the JSON response schema of the API.
//
// Every response type is a fixed struct, so field presence and order are the
// same for every response. Slices that may be empty are always initialized
// by their constructors and encode as [] rather than null.
package models
