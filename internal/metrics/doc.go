// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package metrics provides Prometheus metrics for animerec.

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

Catalog:
  - catalog_query_duration_seconds{operation}: DuckDB reads during load
  - catalog_load_errors_total{source}: failed dataset file loads
  - catalog_items: titles in the loaded catalog

Recommendation:
  - resolver_lookups_total{result}: exact, fuzzy, no_match, no_input
  - recommendations_total{outcome}: matched, no_match, no_input
  - recommendation_duration_seconds: end-to-end latency

Enrichment:
  - enrichment_requests_total{result}: success, not_found, error
  - enrichment_request_duration_seconds
  - enrichment_cache_hits_total, enrichment_cache_misses_total
  - popular_warmups_total{result}
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name,result},
    circuit_breaker_consecutive_failures{name},
    circuit_breaker_state_transitions_total{name,from_state,to_state}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

# Example Queries

	# Share of lookups that fell back to fuzzy matching
	sum(rate(resolver_lookups_total{result="fuzzy"}[5m])) / sum(rate(resolver_lookups_total[5m]))

	# Enrichment cache hit ratio
	rate(enrichment_cache_hits_total[5m]) /
	  (rate(enrichment_cache_hits_total[5m]) + rate(enrichment_cache_misses_total[5m]))
*/
package metrics
