// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
)

// PopularSource builds the popular panel. *recommend.Service implements it.
type PopularSource interface {
	Popular(ctx context.Context) ([]recommend.PopularItem, error)
}

// warmupTimeout bounds one warmup pass.
const warmupTimeout = 2 * time.Minute

// PopularWarmupService builds the popular panel on start and then on every
// interval so the enrichment cache holds its metadata before users ask.
// A failed pass is logged and counted; the service keeps running.
type PopularWarmupService struct {
	source   PopularSource
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewPopularWarmupService creates a warmup service. A non-positive interval
// warms up once on start and then idles until shutdown.
func NewPopularWarmupService(source PopularSource, interval time.Duration) *PopularWarmupService {
	return &PopularWarmupService{
		source:   source,
		interval: interval,
		logger:   logging.WithComponent("popular-warmup"),
		name:     "popular-warmup",
	}
}

// Serve implements suture.Service.
func (s *PopularWarmupService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Popular warmup starting")

	s.warm(ctx)

	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.warm(ctx)
		}
	}
}

// warm runs one pass. Errors are recorded, never returned, so a flaky
// upstream does not put the supervisor into backoff.
func (s *PopularWarmupService) warm(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()

	start := time.Now()
	items, err := s.source.Popular(passCtx)
	if ctx.Err() != nil {
		return
	}
	metrics.RecordPopularWarmup(err)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Popular warmup failed")
		return
	}

	enriched := 0
	for _, it := range items {
		if it.Metadata != nil {
			enriched++
		}
	}
	s.logger.Debug().
		Int("items", len(items)).
		Int("enriched", enriched).
		Dur("duration", time.Since(start)).
		Msg("Popular warmup complete")
}

// String names the service in supervisor events.
func (s *PopularWarmupService) String() string {
	return s.name
}
