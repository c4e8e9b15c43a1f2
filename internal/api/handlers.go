// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/animerec/internal/recommend"
)

// RecommendationService is the part of recommend.Service the handlers use.
type RecommendationService interface {
	GetRecommendations(ctx context.Context, query string) (*recommend.Outcome, error)
	Popular(ctx context.Context) ([]recommend.PopularItem, error)
}

// CatalogInfo reports the size of the loaded dataset. *catalog.Store implements it.
type CatalogInfo interface {
	Len() int
	Popular() []string
}

// BreakerState reports the enrichment circuit breaker state.
// *enrich.BreakerGateway implements it.
type BreakerState interface {
	State() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and validation helpers
//   - handlers_health.go: liveness and readiness probes
//   - handlers_recommend.go: recommendation and popular endpoints
type Handler struct {
	service   RecommendationService
	catalog   CatalogInfo  // nil until the dataset is loaded
	breaker   BreakerState // nil when enrichment is disabled
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(service, store, breaker)
//	router := api.NewRouter(handler, api.DefaultChiMiddlewareConfig())
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(service RecommendationService, catalog CatalogInfo, breaker BreakerState) *Handler {
	return &Handler{
		service:   service,
		catalog:   catalog,
		breaker:   breaker,
		startTime: time.Now(),
	}
}
