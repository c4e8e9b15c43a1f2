// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package config provides centralized configuration management for animerec.

Configuration is layered with koanf: built-in defaults, then an optional YAML
file, then environment variables (a local .env file is loaded into the
environment first). Only mapped environment variables are read.

# Configuration Structure

  - ServerConfig: HTTP listener and shutdown settings
  - DatasetConfig: catalog CSV, similarity matrix and popularity list paths
  - RecommendConfig: top-K size, fuzzy match cutoff, enrichment fan-out
  - EnrichmentConfig: AniList endpoint, pacing and circuit breaker
  - CacheConfig: enrichment cache backend (memory, badger, none)
  - SecurityConfig: CORS origins
  - LoggingConfig: zerolog level and format

# Environment Variables

Server:
  - HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT

Dataset:
  - CATALOG_PATH, SIMILARITY_PATH, POPULAR_PATH, DATASET_NAME_COLUMN

Recommendation:
  - RECOMMEND_TOP_K (default: 5)
  - RECOMMEND_MATCH_CUTOFF (default: 0.6)
  - RECOMMEND_POPULAR_LIMIT (default: 10)
  - RECOMMEND_ENRICH_CONCURRENCY (default: 5)
  - RECOMMEND_ENRICH_TIMEOUT (default: 5s)
  - RECOMMEND_KEEP_UNENRICHED (default: false)

Enrichment:
  - ENRICHMENT_ENABLED, ANILIST_ENDPOINT, ANILIST_TIMEOUT, ANILIST_USER_AGENT
  - ANILIST_RATE_LIMIT (requests/second, default: 1.5), ANILIST_BURST
  - ENRICHMENT_WARMUP_INTERVAL (default: 30m, 0 disables)
  - BREAKER_MAX_REQUESTS, BREAKER_INTERVAL, BREAKER_TIMEOUT,
    BREAKER_MIN_REQUESTS, BREAKER_FAILURE_RATIO

Cache:
  - ENRICH_CACHE_BACKEND, ENRICH_CACHE_PATH, ENRICH_CACHE_CAPACITY, ENRICH_CACHE_TTL

Other:
  - CORS_ORIGINS (comma-separated)
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - CONFIG_PATH: explicit YAML config file

# Usage

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
