// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package pagination

import (
	"net/http"
	"net/url"
	"strings"
)

// URLBuilder reconstructs absolute URLs for the incoming request.
type URLBuilder struct {
	// PublicURL, when set, supplies scheme, host and a path prefix.
	PublicURL *url.URL

	// TrustForwarded honors X-Forwarded-Proto and X-Forwarded-Host.
	TrustForwarded bool
}

// NewURLBuilder parses publicURL ("" for none).
func NewURLBuilder(publicURL string, trustForwarded bool) (URLBuilder, error) {
	b := URLBuilder{TrustForwarded: trustForwarded}
	if publicURL == "" {
		return b, nil
	}
	u, err := url.Parse(strings.TrimSuffix(publicURL, "/"))
	if err != nil {
		return URLBuilder{}, err
	}
	b.PublicURL = u
	return b, nil
}

// Current returns the absolute URL of r, path and query preserved verbatim.
func (b URLBuilder) Current(r *http.Request) *url.URL {
	raw := b.base(r).String() + r.URL.EscapedPath()
	if r.URL.RawQuery != "" {
		raw += "?" + r.URL.RawQuery
	}
	u, err := url.Parse(raw)
	if err != nil {
		// r.URL was already parsed by net/http; fall back to a plain copy.
		u = b.base(r)
		u.Path += r.URL.Path
		u.RawQuery = r.URL.RawQuery
	}
	return u
}

// Resolve returns the absolute URL of the path built from segments, each
// path-escaped, e.g. Resolve(r, "collections", "Bergen op Zoom", "items").
func (b URLBuilder) Resolve(r *http.Request, segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return b.base(r).String() + "/" + strings.Join(escaped, "/")
}

func (b URLBuilder) base(r *http.Request) *url.URL {
	if b.PublicURL != nil {
		u := *b.PublicURL
		u.RawQuery = ""
		u.Fragment = ""
		return &u
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host

	if b.TrustForwarded {
		if proto := firstHeaderValue(r, "X-Forwarded-Proto"); proto == "http" || proto == "https" {
			scheme = proto
		}
		if fwdHost := firstHeaderValue(r, "X-Forwarded-Host"); fwdHost != "" {
			host = fwdHost
		}
	}

	return &url.URL{Scheme: scheme, Host: host}
}

// firstHeaderValue returns the first comma-separated value of a header.
func firstHeaderValue(r *http.Request, name string) string {
	v := r.Header.Get(name)
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
