// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package ranker selects the most similar titles from a similarity row.
package ranker

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// DefaultK is the number of recommendations returned per query.
const DefaultK = 5

// ErrIndexOutOfRange is returned when the query index is not a valid row.
var ErrIndexOutOfRange = errors.New("ranker: index out of range")

// Candidate is one ranked entry.
type Candidate struct {
	Index int
	Score float32
}

// Matrix is the read access the ranker needs from the catalog.
type Matrix interface {
	Row(index int) ([]float32, error)
	Dim() int
}

// TopK returns the k entries of matrix row index with the highest scores,
// excluding index itself. Order is descending by score with ties broken by
// ascending index; NaN scores sort last. The result has min(k, n-1) entries
// and is empty for k <= 0.
func TopK(m Matrix, index, k int) ([]Candidate, error) {
	if index < 0 || index >= m.Dim() {
		return nil, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, m.Dim())
	}
	row, err := m.Row(index)
	if err != nil {
		return nil, fmt.Errorf("read row %d: %w", index, err)
	}
	return Rank(row, index, k), nil
}

// Rank orders row as TopK does. self is excluded when it is a valid column.
func Rank(row []float32, self, k int) []Candidate {
	if k <= 0 {
		return []Candidate{}
	}

	candidates := make([]Candidate, 0, len(row))
	for i, score := range row {
		if i == self {
			continue
		}
		candidates = append(candidates, Candidate{Index: i, Score: score})
	}

	slices.SortFunc(candidates, compare)

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return slices.Clip(candidates)
}

// compare orders by descending score, NaN last, then ascending index.
func compare(a, b Candidate) int {
	aNaN, bNaN := math.IsNaN(float64(a.Score)), math.IsNaN(float64(b.Score))
	switch {
	case aNaN && !bNaN:
		return 1
	case !aNaN && bNaN:
		return -1
	case !aNaN && a.Score != b.Score:
		if a.Score > b.Score {
			return -1
		}
		return 1
	}
	return a.Index - b.Index
}
