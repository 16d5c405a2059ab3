// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordStoreQuery(t *testing.T) {
	before := testutil.ToFloat64(StoreQueryErrors.WithLabelValues("test_failing"))

	RecordStoreQuery("test_ok", 5*time.Millisecond, nil)
	RecordStoreQuery("test_failing", 10*time.Millisecond, errors.New("catalog error"))

	after := testutil.ToFloat64(StoreQueryErrors.WithLabelValues("test_failing"))
	if after-before != 1 {
		t.Errorf("error counter delta = %v, want 1", after-before)
	}
	if got := testutil.ToFloat64(StoreQueryErrors.WithLabelValues("test_ok")); got != 0 {
		t.Errorf("successful query counted as error: %v", got)
	}
}

func TestTrackStoreConnection(t *testing.T) {
	before := testutil.ToFloat64(StoreConnectionsOpen)

	TrackStoreConnection(true)
	if got := testutil.ToFloat64(StoreConnectionsOpen); got != before+1 {
		t.Errorf("after open gauge = %v, want %v", got, before+1)
	}
	TrackStoreConnection(false)
	if got := testutil.ToFloat64(StoreConnectionsOpen); got != before {
		t.Errorf("after close gauge = %v, want %v", got, before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/collections/{municipality}/items", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/collections/{municipality}/items", "200", 3*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("request counter = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
}

func TestRecordMalformedGeometry(t *testing.T) {
	before := testutil.ToFloat64(MalformedGeometries)
	RecordMalformedGeometry()
	if got := testutil.ToFloat64(MalformedGeometries); got != before+1 {
		t.Errorf("malformed counter = %v, want %v", got, before+1)
	}
}

func TestSetStoreReady(t *testing.T) {
	SetStoreReady(true)
	if got := testutil.ToFloat64(StoreReady); got != 1 {
		t.Errorf("ready gauge = %v, want 1", got)
	}
	SetStoreReady(false)
	if got := testutil.ToFloat64(StoreReady); got != 0 {
		t.Errorf("ready gauge = %v, want 0", got)
	}
}
