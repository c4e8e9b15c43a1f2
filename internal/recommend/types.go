// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"github.com/tomtom215/animerec/internal/enrich"
)

// User-facing messages attached to an Outcome.
const (
	MessageNoInput   = "Please enter an anime title."
	MessageNoMatch   = "No similar anime found. Please try a different title."
	MessageNoResults = "No recommendations found."
)

// OutcomeKind classifies the result of a recommendation request.
type OutcomeKind int

const (
	// OutcomeNoInput means the query was blank; nothing was looked up.
	OutcomeNoInput OutcomeKind = iota

	// OutcomeNoMatch means no catalog title reached the match cutoff.
	OutcomeNoMatch

	// OutcomeMatched means the query resolved to a catalog title.
	OutcomeMatched
)

// String returns the metric and JSON label for the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoInput:
		return "no_input"
	case OutcomeNoMatch:
		return "no_match"
	case OutcomeMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its label.
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Candidate is one ranked neighbour of the matched title, before enrichment.
type Candidate struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Index int     `json:"index"`
	Score float32 `json:"score"`
}

// Recommendation is a ranked title with its display metadata. Metadata is
// nil only when unenriched results are kept.
type Recommendation struct {
	Rank     int              `json:"rank"`
	Name     string           `json:"name"`
	Metadata *enrich.Metadata `json:"metadata,omitempty"`
}

// Outcome is the full answer to one recommendation request.
type Outcome struct {
	Kind        OutcomeKind `json:"outcome"`
	Query       string      `json:"query"`
	MatchedName string      `json:"matched_name,omitempty"`
	MatchScore  float64     `json:"match_score,omitempty"`
	Exact       bool        `json:"exact,omitempty"`
	Notice      string      `json:"notice,omitempty"`
	Message     string      `json:"message,omitempty"`

	// Candidates is the ranker's top-K in rank order.
	Candidates []Candidate `json:"candidates"`

	// Results keeps rank order and holds the enriched subset of Candidates.
	Results []Recommendation `json:"results"`
}

// PopularItem is one entry of the popular panel. Rank is the 1-based
// position in the popularity list and survives skipped entries.
type PopularItem struct {
	Rank           int              `json:"rank"`
	Name           string           `json:"name"`
	Metadata       *enrich.Metadata `json:"metadata,omitempty"`
	SyntheticViews int              `json:"synthetic_views"`
	ViewsSynthetic bool             `json:"views_synthetic"`
}
