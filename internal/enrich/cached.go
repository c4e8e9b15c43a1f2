// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package enrich

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
)

// DefaultCacheTTL is how long found records stay cached.
const DefaultCacheTTL = 24 * time.Hour

// DefaultFetchTimeout bounds a shared upstream lookup.
const DefaultFetchTimeout = 5 * time.Second

// Ensure CachedGateway implements Gateway
var _ Gateway = (*CachedGateway)(nil)

// CachedGateway serves records from a Store and fills it from the wrapped
// Gateway. Concurrent misses for the same title share one upstream call,
// which runs detached from any single caller's cancellation and is bounded
// by its own timeout. Each caller still stops waiting when its context ends.
// Failures are never cached, so a title is retried on the next request.
type CachedGateway struct {
	next         Gateway
	store        Store
	ttl          time.Duration
	fetchTimeout time.Duration
	group        singleflight.Group
}

// CachedOption configures a CachedGateway.
type CachedOption func(*CachedGateway)

// WithFetchTimeout bounds each shared upstream lookup. Non-positive values
// keep DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) CachedOption {
	return func(g *CachedGateway) {
		if d > 0 {
			g.fetchTimeout = d
		}
	}
}

// NewCachedGateway wraps next with store. A nil store returns next unchanged.
func NewCachedGateway(next Gateway, store Store, ttl time.Duration, opts ...CachedOption) Gateway {
	if store == nil {
		return next
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	g := &CachedGateway{next: next, store: store, ttl: ttl, fetchTimeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Fetch returns a cached record or looks it up.
func (g *CachedGateway) Fetch(ctx context.Context, name string) (*Metadata, error) {
	md, ok, err := g.store.Get(ctx, name)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("title", name).Msg("Enrichment cache read failed")
	}
	if ok {
		metrics.RecordEnrichmentCacheLookup(true)
		return md, nil
	}
	metrics.RecordEnrichmentCacheLookup(false)

	// The flight outlives the caller that started it; request values such as
	// the request ID are kept for logging.
	flightCtx := context.WithoutCancel(ctx)
	ch := g.group.DoChan(name, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(flightCtx, g.fetchTimeout)
		defer cancel()

		md, err := g.next.Fetch(fetchCtx, name)
		if err != nil {
			return nil, err
		}
		if err := g.store.Set(fetchCtx, name, md, g.ttl); err != nil {
			logging.Ctx(fetchCtx).Warn().Err(err).Str("title", name).Msg("Enrichment cache write failed")
		}
		return md, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		out := *res.Val.(*Metadata)
		return &out, nil
	}
}
