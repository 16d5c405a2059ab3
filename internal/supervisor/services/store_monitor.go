// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

package services

import (
	"context"
	"time"

	"github.com/tomtom215/footprints/internal/logging"
	"github.com/tomtom215/footprints/internal/metrics"
)

// Pinger opens the store and runs a trivial query.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService probes the store on an interval, exporting the result
// as the store_ready gauge and logging readiness transitions. It never
// returns an error for a failed probe.
type StoreMonitorService struct {
	store    Pinger
	interval time.Duration
	timeout  time.Duration
	name     string

	// onProbe is called after every probe; set in tests.
	onProbe func(err error)
}

// NewStoreMonitorService probes store every interval. A non-positive interval
// means 30s.
func NewStoreMonitorService(store Pinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &StoreMonitorService{
		store:    store,
		interval: interval,
		timeout:  min(interval, 30*time.Second),
		name:     "store-monitor",
	}
}

// Serve implements suture.Service.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	ready := s.probe(ctx, true, false)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			ready = s.probe(ctx, false, ready)
		}
	}
}

func (s *StoreMonitorService) probe(ctx context.Context, first, wasReady bool) bool {
	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.store.Ping(probeCtx)
	ready := err == nil
	metrics.SetStoreReady(ready)

	switch {
	case err != nil && ctx.Err() != nil:
		// Shutting down; not a store failure.
	case err != nil && (first || wasReady):
		logging.Warn().Err(err).Msg("Building store is not readable")
	case ready && (first || !wasReady):
		logging.Info().Msg("Building store is readable")
	}

	if s.onProbe != nil {
		s.onProbe(err)
	}
	return ready
}

// String names the service in supervisor events.
func (s *StoreMonitorService) String() string {
	return s.name
}
