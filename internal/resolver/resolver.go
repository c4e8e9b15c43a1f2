// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package resolver

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
)

// DefaultCutoff is the minimum similarity ratio for accepting a match.
const DefaultCutoff = 0.6

// Lookup results recorded in resolver_lookups_total.
const (
	ResultExact   = "exact"
	ResultFuzzy   = "fuzzy"
	ResultNoMatch = "no_match"
	ResultNoInput = "no_input"
)

// Resolution is the canonical name chosen for a query.
type Resolution struct {
	Name   string
	Index  int     // position in the name list
	Score  float64 // SequenceMatcher ratio in [0, 1]
	Exact  bool
	Notice string // "Did you mean: <name>?"
}

// Resolver maps free-text queries onto a fixed list of canonical names.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	names  []string
	cutoff float64
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCutoff overrides DefaultCutoff. Values outside (0, 1] are ignored.
func WithCutoff(cutoff float64) Option {
	return func(r *Resolver) {
		if cutoff > 0 && cutoff <= 1 {
			r.cutoff = cutoff
		}
	}
}

// New returns a Resolver over names. The slice is not copied and must not
// change afterwards.
func New(names []string, opts ...Option) *Resolver {
	r := &Resolver{names: names, cutoff: DefaultCutoff}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cutoff returns the acceptance threshold in use.
func (r *Resolver) Cutoff() float64 {
	return r.cutoff
}

// Resolve returns the best match for query, or false when the query is blank
// or no name reaches the cutoff.
func (r *Resolver) Resolve(query string) (Resolution, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		metrics.RecordResolverLookup(ResultNoInput)
		return Resolution{}, false
	}

	res, ok := BestMatch(query, r.names, r.cutoff)
	switch {
	case !ok:
		metrics.RecordResolverLookup(ResultNoMatch)
		logging.Debug().Str("query", query).Float64("cutoff", r.cutoff).Msg("No title above match cutoff")
	case res.Exact:
		metrics.RecordResolverLookup(ResultExact)
	default:
		metrics.RecordResolverLookup(ResultFuzzy)
		logging.Debug().
			Str("query", query).
			Str("matched", res.Name).
			Float64("score", res.Score).
			Msg("Resolved title by fuzzy match")
	}
	return res, ok
}

// BestMatch scores every name against query with difflib's SequenceMatcher
// and returns the highest ratio that is >= cutoff. Candidates are pruned with
// RealQuickRatio and QuickRatio before the full Ratio, as in Python's
// difflib.get_close_matches. Equal top scores keep the earliest name.
func BestMatch(query string, names []string, cutoff float64) (Resolution, bool) {
	if query == "" {
		return Resolution{}, false
	}

	m := difflib.NewMatcher(nil, splitChars(query))

	best := Resolution{Index: -1}
	for i, name := range names {
		if name == query {
			return newResolution(name, i, 1.0, true), true
		}

		m.SetSeq1(splitChars(name))
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		score := m.Ratio()
		if score >= cutoff && score > best.Score {
			best = newResolution(name, i, score, false)
		}
	}

	if best.Index < 0 {
		return Resolution{}, false
	}
	return best, true
}

func newResolution(name string, index int, score float64, exact bool) Resolution {
	return Resolution{
		Name:   name,
		Index:  index,
		Score:  score,
		Exact:  exact,
		Notice: fmt.Sprintf("Did you mean: %s?", name),
	}
}

// splitChars splits s into single-character strings so ratios are computed
// per Unicode code point.
func splitChars(s string) []string {
	return strings.Split(s, "")
}
