// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Metrics are process-global, so tests assert on deltas rather than absolute values.

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{"recommendations ok", "GET", "/api/v1/recommendations", "200", 120 * time.Millisecond},
		{"validation error", "GET", "/api/v1/recommendations", "400", 2 * time.Millisecond},
		{"popular ok", "GET", "/api/v1/popular", "200", 40 * time.Millisecond},
		{"not ready", "GET", "/api/v1/health/ready", "503", time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode)
			before := testutil.ToFloat64(counter)

			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("api_requests_total delta = %v, want 1", got)
			}
		})
	}
}

func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	for i := 0; i < 10; i++ {
		TrackActiveRequest(true)
	}
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 10 {
		t.Errorf("active requests delta = %v, want 10", got)
	}

	for i := 0; i < 10; i++ {
		TrackActiveRequest(false)
	}
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v after all requests finish", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	for _, outcome := range []string{"matched", "no_match", "no_input"} {
		counter := RecommendationsTotal.WithLabelValues(outcome)
		before := testutil.ToFloat64(counter)

		RecordRecommendation(outcome, 50*time.Millisecond)

		if got := testutil.ToFloat64(counter) - before; got != 1 {
			t.Errorf("recommendations_total{outcome=%q} delta = %v, want 1", outcome, got)
		}
	}
}

func TestRecordResolverLookup(t *testing.T) {
	counter := ResolverLookups.WithLabelValues("fuzzy")
	before := testutil.ToFloat64(counter)

	RecordResolverLookup("fuzzy")
	RecordResolverLookup("fuzzy")

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("resolver_lookups_total delta = %v, want 2", got)
	}
}

func TestRecordEnrichmentCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(EnrichmentCacheHits)
	misses := testutil.ToFloat64(EnrichmentCacheMisses)

	RecordEnrichmentCacheLookup(true)
	RecordEnrichmentCacheLookup(false)
	RecordEnrichmentCacheLookup(false)

	if got := testutil.ToFloat64(EnrichmentCacheHits) - hits; got != 1 {
		t.Errorf("cache hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(EnrichmentCacheMisses) - misses; got != 2 {
		t.Errorf("cache misses delta = %v, want 2", got)
	}
}

func TestRecordEnrichmentRequest(t *testing.T) {
	counter := EnrichmentRequestsTotal.WithLabelValues("not_found")
	before := testutil.ToFloat64(counter)

	RecordEnrichmentRequest("not_found", 300*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("enrichment_requests_total delta = %v, want 1", got)
	}
}

func TestRecordPopularWarmup(t *testing.T) {
	ok := PopularWarmups.WithLabelValues("success")
	failed := PopularWarmups.WithLabelValues("error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordPopularWarmup(nil)
	RecordPopularWarmup(errors.New("upstream unavailable"))

	if got := testutil.ToFloat64(ok) - okBefore; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(failed) - failedBefore; got != 1 {
		t.Errorf("error delta = %v, want 1", got)
	}
}

func TestCatalogMetrics(t *testing.T) {
	SetCatalogItems(12294)
	if got := testutil.ToFloat64(CatalogItems); got != 12294 {
		t.Errorf("catalog_items = %v, want 12294", got)
	}

	counter := CatalogLoadErrors.WithLabelValues("matrix")
	before := testutil.ToFloat64(counter)
	RecordCatalogLoadError("matrix")
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("catalog_load_errors_total delta = %v, want 1", got)
	}

	RecordCatalogQuery("names", 15*time.Millisecond)
}

func TestConcurrentMetricRecording(t *testing.T) {
	counter := RecommendationsTotal.WithLabelValues("matched")
	before := testutil.ToFloat64(counter)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordRecommendation("matched", time.Millisecond)
			RecordEnrichmentCacheLookup(true)
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(counter) - before; got != 50 {
		t.Errorf("recommendations_total delta = %v, want 50", got)
	}
}
