// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package main is the entry point for the Animerec HTTP server.

Animerec recommends anime similar to a title the user types. The title is
matched fuzzily against a catalog, the most similar catalog entries are read
from a precomputed similarity matrix, and each one is decorated with cover
art and a link fetched from AniList.

# Application Architecture

Processes run under a Suture v4 supervisor tree:

	RootSupervisor ("animerec")
	├── EnrichmentSupervisor ("enrichment-layer")
	│   └── Popular panel warmup (every ENRICHMENT_WARMUP_INTERVAL)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: Koanf v2 with defaults, config.yaml, .env and environment
 2. Logging: zerolog, plus a slog bridge for the supervisor
 3. Dataset: catalog CSV, similarity matrix (.npy) and popularity CSV, loaded
    eagerly; any failure exits the process
 4. Enrichment: AniList client, circuit breaker and cache (memory or BadgerDB)
 5. HTTP server and supervisor tree

# Configuration

Commonly used environment variables:

	CATALOG_PATH=anime_dataset.csv
	SIMILARITY_PATH=similarity_score.npy
	POPULAR_PATH=popular_anime.csv
	HTTP_PORT=8080
	RECOMMEND_TOP_K=5
	ENRICHMENT_ENABLED=true
	ENRICH_CACHE_BACKEND=memory    # memory, badger, none
	LOG_LEVEL=info

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests within SHUTDOWN_TIMEOUT; the
enrichment cache is closed afterwards.
*/
package main
