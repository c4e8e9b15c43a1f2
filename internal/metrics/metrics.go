// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog Metrics
	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Duration of DuckDB reads while loading the catalog",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "describe", "names", "popular"
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_load_errors_total",
			Help: "Total number of catalog load failures",
		},
		[]string{"source"}, // "catalog", "matrix", "popular"
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of titles in the loaded catalog",
		},
	)

	// Resolver Metrics
	ResolverLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolver_lookups_total",
			Help: "Total number of title resolutions by result",
		},
		[]string{"result"}, // "exact", "fuzzy", "no_match", "no_input"
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "matched", "no_match", "no_input"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "End-to-end recommendation latency including enrichment",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// Enrichment Metrics
	EnrichmentRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrichment_requests_total",
			Help: "Total number of AniList lookups by result",
		},
		[]string{"result"}, // "success", "not_found", "timeout", "error"
	)

	EnrichmentRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enrichment_request_duration_seconds",
			Help:    "AniList lookup latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	EnrichmentCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrichment_cache_hits_total",
			Help: "Total number of enrichment cache hits",
		},
	)

	EnrichmentCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrichment_cache_misses_total",
			Help: "Total number of enrichment cache misses",
		},
	)

	PopularWarmups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "popular_warmups_total",
			Help: "Total number of popular panel warmup passes",
		},
		[]string{"result"}, // "success", "error"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordCatalogQuery records a DuckDB read made while loading the catalog
func RecordCatalogQuery(operation string, duration time.Duration) {
	CatalogQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCatalogLoadError counts a failed load of one dataset file
func RecordCatalogLoadError(source string) {
	CatalogLoadErrors.WithLabelValues(source).Inc()
}

// SetCatalogItems publishes the catalog size
func SetCatalogItems(n int) {
	CatalogItems.Set(float64(n))
}

// RecordResolverLookup records a title resolution result
func RecordResolverLookup(result string) {
	ResolverLookups.WithLabelValues(result).Inc()
}

// RecordRecommendation records a recommendation request outcome and latency
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordEnrichmentRequest records an upstream lookup result
func RecordEnrichmentRequest(result string, duration time.Duration) {
	EnrichmentRequestsTotal.WithLabelValues(result).Inc()
	EnrichmentRequestDuration.Observe(duration.Seconds())
}

// RecordEnrichmentCacheLookup counts a cache hit or miss
func RecordEnrichmentCacheLookup(hit bool) {
	if hit {
		EnrichmentCacheHits.Inc()
	} else {
		EnrichmentCacheMisses.Inc()
	}
}

// RecordPopularWarmup records one warmup pass of the popular panel
func RecordPopularWarmup(err error) {
	if err != nil {
		PopularWarmups.WithLabelValues("error").Inc()
		return
	}
	PopularWarmups.WithLabelValues("success").Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
