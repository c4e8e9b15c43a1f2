// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/animerec/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateEnrichment(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got: %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got: %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got: %s", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.CatalogPath) == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if strings.TrimSpace(c.Dataset.MatrixPath) == "" {
		return fmt.Errorf("SIMILARITY_PATH is required")
	}
	if strings.TrimSpace(c.Dataset.PopularPath) == "" {
		return fmt.Errorf("POPULAR_PATH is required")
	}
	if strings.TrimSpace(c.Dataset.NameColumn) == "" {
		return fmt.Errorf("DATASET_NAME_COLUMN is required")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.TopK < 1 {
		return fmt.Errorf("RECOMMEND_TOP_K must be at least 1, got: %d", r.TopK)
	}
	if r.MatchCutoff <= 0 || r.MatchCutoff > 1 {
		return fmt.Errorf("RECOMMEND_MATCH_CUTOFF must be in (0, 1], got: %g", r.MatchCutoff)
	}
	if r.PopularLimit < 1 {
		return fmt.Errorf("RECOMMEND_POPULAR_LIMIT must be at least 1, got: %d", r.PopularLimit)
	}
	if r.EnrichConcurrency < 1 {
		return fmt.Errorf("RECOMMEND_ENRICH_CONCURRENCY must be at least 1, got: %d", r.EnrichConcurrency)
	}
	if r.EnrichTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_ENRICH_TIMEOUT must be positive, got: %s", r.EnrichTimeout)
	}
	return nil
}

// validateEnrichment validates the AniList gateway (only if enabled)
func (c *Config) validateEnrichment() error {
	e := c.Enrichment
	if !e.Enabled {
		return nil
	}

	if e.Endpoint == "" {
		return fmt.Errorf("ANILIST_ENDPOINT is required when ENRICHMENT_ENABLED=true")
	}
	if err := validateHTTPURL(e.Endpoint, "ANILIST_ENDPOINT"); err != nil {
		return err
	}
	if e.Timeout <= 0 {
		return fmt.Errorf("ANILIST_TIMEOUT must be positive, got: %s", e.Timeout)
	}
	if e.RequestsPerSecond < 0 {
		return fmt.Errorf("ANILIST_RATE_LIMIT must not be negative, got: %g", e.RequestsPerSecond)
	}
	if e.RequestsPerSecond > 0 && e.Burst < 1 {
		return fmt.Errorf("ANILIST_BURST must be at least 1 when ANILIST_RATE_LIMIT is set, got: %d", e.Burst)
	}
	if e.WarmupInterval < 0 {
		return fmt.Errorf("ENRICHMENT_WARMUP_INTERVAL must not be negative, got: %s", e.WarmupInterval)
	}

	b := e.Breaker
	if b.MaxRequests < 1 {
		return fmt.Errorf("BREAKER_MAX_REQUESTS must be at least 1")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got: %g", b.FailureRatio)
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive, got: %s", b.Timeout)
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case "none":
		return nil
	case "memory":
		if c.Cache.Capacity < 1 {
			return fmt.Errorf("ENRICH_CACHE_CAPACITY must be at least 1 for the memory backend, got: %d", c.Cache.Capacity)
		}
	case "badger":
		if strings.TrimSpace(c.Cache.Path) == "" {
			return fmt.Errorf("ENRICH_CACHE_PATH is required when ENRICH_CACHE_BACKEND=badger")
		}
	default:
		return fmt.Errorf("ENRICH_CACHE_BACKEND must be one of memory, badger, none, got: %s", c.Cache.Backend)
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("ENRICH_CACHE_TTL must be positive, got: %s", c.Cache.TTL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got: %s", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got: %s", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL checks that a URL uses http/https and names a host.
// Paths are allowed since GraphQL endpoints may live below the root.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}
