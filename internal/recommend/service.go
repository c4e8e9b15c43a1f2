// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/animerec/internal/enrich"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/ranker"
	"github.com/tomtom215/animerec/internal/resolver"
)

// Catalog is the read-only view of the dataset the service needs.
// *catalog.Store implements it.
type Catalog interface {
	ranker.Matrix
	Name(index int) string
	Popular() []string
}

// Resolver maps free text to a catalog title. *resolver.Resolver implements it.
type Resolver interface {
	Resolve(query string) (resolver.Resolution, bool)
}

// Service answers recommendation and popular-panel requests.
// It is safe for concurrent use.
type Service struct {
	cfg      *Config
	catalog  Catalog
	resolver Resolver
	gateway  enrich.Gateway // nil disables enrichment
	views    ViewCounter
	logger   zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithViewCounter replaces the synthetic view counter.
func WithViewCounter(vc ViewCounter) Option {
	return func(s *Service) {
		if vc != nil {
			s.views = vc
		}
	}
}

// NewService creates a Service. A nil gateway disables enrichment, in which
// case results carry names only.
func NewService(cfg *Config, cat Catalog, res Resolver, gw enrich.Gateway, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil || res == nil {
		return nil, fmt.Errorf("catalog and resolver are required")
	}

	s := &Service{
		cfg:      cfg,
		catalog:  cat,
		resolver: res,
		gateway:  gw,
		views:    NewSyntheticViewCounter(0),
		logger:   logging.WithComponent("recommend"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GetRecommendations resolves query, ranks the matched title's neighbours and
// enriches them. The only error is a catalog read failure; a blank query or
// an unmatched title is reported through Outcome.Kind.
func (s *Service) GetRecommendations(ctx context.Context, query string) (*Outcome, error) {
	start := time.Now()
	query = strings.TrimSpace(query)
	out := &Outcome{
		Query:      query,
		Candidates: []Candidate{},
		Results:    []Recommendation{},
	}

	if query == "" {
		out.Kind = OutcomeNoInput
		out.Message = MessageNoInput
		metrics.RecordRecommendation(out.Kind.String(), time.Since(start))
		return out, nil
	}

	res, ok := s.resolver.Resolve(query)
	if !ok {
		out.Kind = OutcomeNoMatch
		out.Message = MessageNoMatch
		metrics.RecordRecommendation(out.Kind.String(), time.Since(start))
		return out, nil
	}

	out.Kind = OutcomeMatched
	out.MatchedName = res.Name
	out.MatchScore = res.Score
	out.Exact = res.Exact
	out.Notice = res.Notice

	ranked, err := ranker.TopK(s.catalog, res.Index, s.cfg.TopK)
	if err != nil {
		return nil, fmt.Errorf("rank %q: %w", res.Name, err)
	}

	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = s.catalog.Name(c.Index)
		out.Candidates = append(out.Candidates, Candidate{
			Rank:  i + 1,
			Name:  names[i],
			Index: c.Index,
			Score: c.Score,
		})
	}

	enriched := s.enrichAll(ctx, names)
	for i, name := range names {
		if enriched[i] == nil && !s.keepUnenriched() {
			continue
		}
		out.Results = append(out.Results, Recommendation{
			Rank:     i + 1,
			Name:     name,
			Metadata: enriched[i],
		})
	}
	if len(out.Results) == 0 {
		out.Message = MessageNoResults
	}

	s.logger.Debug().
		Str("query", query).
		Str("matched", res.Name).
		Int("candidates", len(out.Candidates)).
		Int("results", len(out.Results)).
		Dur("elapsed", time.Since(start)).
		Msg("Recommendations assembled")

	metrics.RecordRecommendation(out.Kind.String(), time.Since(start))
	return out, nil
}

// Popular returns the head of the popularity list, enriched, with 1-based
// ranks taken from list position. Blank names and failed lookups are skipped
// without renumbering the rest.
func (s *Service) Popular(ctx context.Context) ([]PopularItem, error) {
	list := s.catalog.Popular()
	if len(list) > s.cfg.PopularLimit {
		list = list[:s.cfg.PopularLimit]
	}

	enriched := s.enrichAll(ctx, list)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := make([]PopularItem, 0, len(list))
	for i, name := range list {
		if name == "" {
			continue
		}
		if enriched[i] == nil && !s.keepUnenriched() {
			continue
		}
		items = append(items, PopularItem{
			Rank:           i + 1,
			Name:           name,
			Metadata:       enriched[i],
			SyntheticViews: s.views.Views(name),
			ViewsSynthetic: true,
		})
	}
	return items, nil
}

// keepUnenriched reports whether entries without metadata stay in results.
// With enrichment disabled nothing would survive otherwise.
func (s *Service) keepUnenriched() bool {
	return s.cfg.KeepUnenriched || s.gateway == nil
}

// enrichAll fetches metadata for names with at most EnrichConcurrency calls
// in flight. The result is index-aligned with names; a failed lookup leaves
// nil and never cancels the others.
func (s *Service) enrichAll(ctx context.Context, names []string) []*enrich.Metadata {
	out := make([]*enrich.Metadata, len(names))
	if s.gateway == nil || len(names) == 0 {
		return out
	}

	var g errgroup.Group
	g.SetLimit(s.cfg.EnrichConcurrency)
	for i, name := range names {
		if name == "" {
			continue
		}
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, s.cfg.EnrichTimeout)
			defer cancel()

			md, err := s.gateway.Fetch(callCtx, name)
			if err != nil {
				s.logEnrichFailure(ctx, name, err)
				return nil
			}
			out[i] = md
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *Service) logEnrichFailure(ctx context.Context, name string, err error) {
	logger := s.logger
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logger = logger.With().Str("request_id", id).Logger()
	}
	if enrich.IsMiss(err) {
		logger.Debug().Err(err).Str("title", name).Msg("No metadata for title")
		return
	}
	logger.Warn().Err(err).Str("title", name).Msg("Enrichment failed, skipping title")
}
