// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/enrich"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/resolver"
)

// Components holds the wired recommendation stack.
type Components struct {
	Catalog  *catalog.Store
	Resolver *resolver.Resolver
	Service  *recommend.Service

	// Breaker is nil when enrichment is disabled.
	Breaker *enrich.BreakerGateway

	cache enrich.Store
}

// Close releases the enrichment cache.
func (c *Components) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}

// Build loads the catalog and wires resolver, gateway stack and service.
// A catalog failure is returned as the *catalog.DataLoadError from Load.
func Build(ctx context.Context, cfg *config.Config, opts ...recommend.Option) (*Components, error) {
	store, err := catalog.NewLoader(DatasetPaths(cfg)).Get(ctx)
	if err != nil {
		return nil, err
	}
	return Wire(cfg, store, opts...)
}

// Wire builds everything above an already loaded catalog.
func Wire(cfg *config.Config, store *catalog.Store, opts ...recommend.Option) (*Components, error) {
	c := &Components{
		Catalog:  store,
		Resolver: resolver.New(store.Names(), resolver.WithCutoff(cfg.Recommend.MatchCutoff)),
	}

	var gateway enrich.Gateway
	if cfg.Enrichment.Enabled {
		cache, err := enrich.NewStore(enrich.StoreConfig{
			Type:     enrich.StoreType(cfg.Cache.Backend),
			Path:     cfg.Cache.Path,
			Capacity: cfg.Cache.Capacity,
			TTL:      cfg.Cache.TTL,
		})
		if err != nil {
			return nil, err
		}
		c.cache = cache

		gateway, c.Breaker = NewGateway(cfg, cache)
	} else {
		logging.Info().Msg("Enrichment disabled (ENRICHMENT_ENABLED=false)")
	}

	rcfg := recommend.DefaultConfig()
	rcfg.TopK = cfg.Recommend.TopK
	rcfg.PopularLimit = cfg.Recommend.PopularLimit
	rcfg.EnrichConcurrency = cfg.Recommend.EnrichConcurrency
	rcfg.EnrichTimeout = cfg.Recommend.EnrichTimeout
	rcfg.KeepUnenriched = cfg.Recommend.KeepUnenriched

	svc, err := recommend.NewService(rcfg, store, c.Resolver, gateway, opts...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create recommendation service: %w", err), c.Close())
	}
	c.Service = svc
	return c, nil
}

// NewGateway assembles client -> breaker -> cache. The breaker sits below
// the cache so cache hits never count towards it. cache may be nil.
func NewGateway(cfg *config.Config, cache enrich.Store) (enrich.Gateway, *enrich.BreakerGateway) {
	e := cfg.Enrichment
	client := enrich.NewAniListClient(
		enrich.WithEndpoint(e.Endpoint),
		enrich.WithTimeout(e.Timeout),
		enrich.WithUserAgent(e.UserAgent),
		enrich.WithRateLimit(e.RequestsPerSecond, e.Burst),
	)
	breaker := enrich.NewBreakerGateway(client, enrich.BreakerSettings{
		MaxRequests:  e.Breaker.MaxRequests,
		Interval:     e.Breaker.Interval,
		Timeout:      e.Breaker.Timeout,
		MinRequests:  e.Breaker.MinRequests,
		FailureRatio: e.Breaker.FailureRatio,
	})

	logging.Info().
		Str("endpoint", e.Endpoint).
		Str("cache", cfg.Cache.Backend).
		Float64("requests_per_second", e.RequestsPerSecond).
		Msg("Enrichment gateway configured")

	gateway := enrich.NewCachedGateway(breaker, cache, cfg.Cache.TTL,
		enrich.WithFetchTimeout(cfg.Recommend.EnrichTimeout))
	return gateway, breaker
}

// DatasetPaths maps the dataset config onto catalog paths.
func DatasetPaths(cfg *config.Config) catalog.Paths {
	return catalog.Paths{
		Catalog:    cfg.Dataset.CatalogPath,
		Matrix:     cfg.Dataset.MatrixPath,
		Popular:    cfg.Dataset.PopularPath,
		NameColumn: cfg.Dataset.NameColumn,
	}
}
