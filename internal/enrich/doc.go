// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package enrich fetches display metadata (title, cover image, link) for
catalog titles from the AniList GraphQL API.

# Layers

A production gateway is assembled from three Gateway implementations:

	client := enrich.NewAniListClient(
	    enrich.WithTimeout(5*time.Second),
	    enrich.WithRateLimit(1.5, 10), // AniList allows 90 requests/minute
	)
	breaker := enrich.NewBreakerGateway(client, enrich.DefaultBreakerSettings())
	gw := enrich.NewCachedGateway(breaker, store, 24*time.Hour)

  - AniListClient: one POST per lookup, paced by a token bucket
  - BreakerGateway: sony/gobreaker circuit breaker; misses do not count as failures
  - CachedGateway: memory (LRU) or BadgerDB store with singleflight de-duplication

# Errors

Every error means "no data" to callers. ErrNotFound and ErrIncompleteRecord
describe the title; ErrUpstreamStatus, ErrInvalidResponse and ErrUnavailable
describe the upstream. Nothing is retried.
*/
package enrich
