// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/footprints/internal/config"
)

func TestNewChiMiddlewareConfig(t *testing.T) {
	t.Parallel()

	c := NewChiMiddlewareConfig(config.SecurityConfig{
		CORSOrigins:     []string{"https://maps.example.org"},
		RateLimitReqs:   10,
		RateLimitWindow: 30 * time.Second,
	})
	if len(c.CORSAllowedOrigins) != 1 || c.CORSAllowedOrigins[0] != "https://maps.example.org" {
		t.Errorf("origins = %v", c.CORSAllowedOrigins)
	}
	if c.RateLimitRequests != 10 || c.RateLimitWindow != 30*time.Second || c.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", c.RateLimitRequests, c.RateLimitWindow, c.RateLimitDisabled)
	}

	d := NewChiMiddlewareConfig(config.SecurityConfig{})
	if d.RateLimitRequests != 100 || d.RateLimitWindow != time.Minute {
		t.Errorf("zero config should keep defaults, got %d/%v", d.RateLimitRequests, d.RateLimitWindow)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Security = config.SecurityConfig{RateLimitReqs: 2, RateLimitWindow: time.Minute}
	h := newTestServer(t, newFakeStore(), cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/collections", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests && !strings.Contains(w.Body.String(), "RATE_LIMITED") {
			t.Errorf("429 body = %s", w.Body.String())
		}
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 200 429]", codes)
	}

	// Probes are not limited.
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("ping %d = %d", i, w.Code)
		}
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	t.Parallel()

	m := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitRequests: 1, RateLimitWindow: time.Minute, RateLimitDisabled: true})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := m.RateLimit()(next)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("request %d = %d", i, w.Code)
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, newFakeStore(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/collections", nil)
	req.Header.Set("Origin", "https://viewer.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, newFakeStore(), nil)

	doGet(t, h, "/collections/Delft/items")
	w := doGet(t, h, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `endpoint="/collections/{municipality}/items"`) {
		t.Error("metrics missing route-pattern label for items endpoint")
	}
}
