// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the process is alive, regardless of the dataset or AniList.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthLive} "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondSuccess(w, r, models.HealthLive{
		Alive:  true,
		Uptime: time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only once the dataset is loaded
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK once the catalog is loaded, 503 otherwise. The enrichment field reports the AniList circuit breaker state and does not affect readiness.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthReady} "Service is ready"
// @Failure 503 {object} models.APIResponse{data=models.HealthReady} "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := models.HealthReady{
		Status:     "not_ready",
		Enrichment: "disabled",
		Uptime:     time.Since(h.startTime).Seconds(),
	}
	if h.catalog != nil && h.service != nil {
		ready.Status = "ready"
		ready.CatalogLoaded = true
		ready.CatalogSize = h.catalog.Len()
		ready.PopularSize = len(h.catalog.Popular())
	}
	if h.breaker != nil {
		ready.Enrichment = h.breaker.State()
	}

	statusCode := http.StatusOK
	status := models.StatusSuccess
	if !ready.CatalogLoaded {
		statusCode = http.StatusServiceUnavailable
		status = models.StatusError
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data:   ready,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
