// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/footprints/internal/config"
	"github.com/tomtom215/footprints/internal/middleware"
	"github.com/tomtom215/footprints/internal/models"
)

// ChiMiddlewareConfig holds configuration for the CORS and rate limit middleware.
type ChiMiddlewareConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSExposedHeaders []string
	CORSMaxAge         int // seconds

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
	RateLimitKeyFunc  httprate.KeyFunc
}

// DefaultChiMiddlewareConfig returns the read-only API defaults.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSAllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		CORSAllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		CORSExposedHeaders: []string{middleware.RequestIDHeader},
		CORSMaxAge:         86400,

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

// NewChiMiddlewareConfig derives middleware settings from the security config.
func NewChiMiddlewareConfig(cfg config.SecurityConfig) *ChiMiddlewareConfig {
	c := DefaultChiMiddlewareConfig()
	if len(cfg.CORSOrigins) > 0 {
		c.CORSAllowedOrigins = cfg.CORSOrigins
	}
	if cfg.RateLimitReqs > 0 {
		c.RateLimitRequests = cfg.RateLimitReqs
	}
	if cfg.RateLimitWindow > 0 {
		c.RateLimitWindow = cfg.RateLimitWindow
	}
	c.RateLimitDisabled = cfg.RateLimitDisabled
	return c
}

// ChiMiddleware builds chi-compatible middleware from a config.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates the middleware factory. A nil config uses defaults.
func NewChiMiddleware(c *ChiMiddlewareConfig) *ChiMiddleware {
	if c == nil {
		c = DefaultChiMiddlewareConfig()
	}

	return &ChiMiddleware{
		config: c,
		cors: cors.Handler(cors.Options{
			AllowedOrigins: c.CORSAllowedOrigins,
			AllowedMethods: c.CORSAllowedMethods,
			AllowedHeaders: c.CORSAllowedHeaders,
			ExposedHeaders: c.CORSExposedHeaders,
			MaxAge:         c.CORSMaxAge,
		}),
	}
}

// CORS returns the go-chi/cors handler. It must be global so OPTIONS
// preflights reach it before routing.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit limits requests per client IP. Rejections use the API error
// envelope.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	keyFunc := m.config.RateLimitKeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	return httprate.Limit(
		m.config.RateLimitRequests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(rateLimited),
	)
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusTooManyRequests, models.MediaTypeJSON, models.ErrorResponse{
		Error: models.APIError{
			Code:    "RATE_LIMITED",
			Message: "too many requests",
		},
	})
}
