// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/animerec/internal/ranker"
)

// Config controls ranking and enrichment for a Service.
type Config struct {
	// TopK is the number of neighbours returned per request.
	TopK int

	// PopularLimit is how many entries of the popularity list are shown.
	PopularLimit int

	// EnrichConcurrency bounds parallel gateway calls; 1 is sequential.
	EnrichConcurrency int

	// EnrichTimeout bounds each gateway call.
	EnrichTimeout time.Duration

	// KeepUnenriched keeps entries whose enrichment failed, without metadata.
	KeepUnenriched bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TopK:              ranker.DefaultK,
		PopularLimit:      10,
		EnrichConcurrency: 5,
		EnrichTimeout:     5 * time.Second,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.TopK < 1 {
		errs = append(errs, fmt.Errorf("top_k must be >= 1, got %d", c.TopK))
	}
	if c.PopularLimit < 0 {
		errs = append(errs, fmt.Errorf("popular_limit must be >= 0, got %d", c.PopularLimit))
	}
	if c.EnrichConcurrency < 1 {
		errs = append(errs, fmt.Errorf("enrich_concurrency must be >= 1, got %d", c.EnrichConcurrency))
	}
	if c.EnrichTimeout <= 0 {
		errs = append(errs, fmt.Errorf("enrich_timeout must be positive, got %s", c.EnrichTimeout))
	}
	return errors.Join(errs...)
}
