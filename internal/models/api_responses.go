// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"outcome": "matched", "matched_name": "Naruto", "results": [...]},
//	  "metadata": {"timestamp": "2026-01-12T12:00:00Z", "query_time_ms": 45}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "VALIDATION_ERROR", "message": "q must be at most 256 characters"},
//	  "metadata": {"timestamp": "2026-01-12T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata contains response metadata.
//
// Fields:
//   - Timestamp: Server time when the response was generated
//   - QueryTimeMS: Handler time in milliseconds, including enrichment
//   - RequestID: X-Request-ID of the request, for log correlation
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: Invalid query parameters
//   - RECOMMENDATION_ERROR: The catalog could not be read
//   - SERVICE_UNAVAILABLE: The catalog is not loaded yet
//   - METHOD_NOT_ALLOWED: Unsupported HTTP method
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthLive is the payload of the liveness probe.
type HealthLive struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime_seconds"`
}

// HealthReady is the payload of the readiness probe.
//
// Ready requires a loaded catalog only; an open breaker degrades the
// service (results lose metadata) but does not make it unready.
type HealthReady struct {
	Status        string  `json:"status"` // "ready" or "not_ready"
	CatalogLoaded bool    `json:"catalog_loaded"`
	CatalogSize   int     `json:"catalog_size"`
	PopularSize   int     `json:"popular_size"`
	Enrichment    string  `json:"enrichment"` // "disabled", or breaker state "closed", "half-open", "open"
	Uptime        float64 `json:"uptime_seconds"`
}
