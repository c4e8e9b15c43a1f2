// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
)

// Paths locates the three dataset files.
type Paths struct {
	Catalog    string // CSV whose name column orders the matrix rows
	Matrix     string // .npy square similarity matrix
	Popular    string // CSV with a name column in rank order
	NameColumn string // defaults to "name"
}

// Store holds the catalog names, similarity matrix and popularity list.
// It is immutable after Load and safe for concurrent reads.
type Store struct {
	names   []string
	index   map[string]int
	dim     int
	matrix  []float32 // dim x dim, row-major
	popular []string
}

// Load reads all three dataset files. Any failure is a *DataLoadError.
func Load(ctx context.Context, p Paths) (*Store, error) {
	if p.NameColumn == "" {
		p.NameColumn = "name"
	}
	log := logging.WithComponent("catalog")
	start := time.Now()

	reader, err := openTableReader()
	if err != nil {
		return nil, loadError(SourceCatalog, p.Catalog, err)
	}
	defer reader.Close() //nolint:errcheck // in-memory connection

	names, index, err := loadNames(ctx, reader, p.Catalog, p.NameColumn)
	if err != nil {
		metrics.RecordCatalogLoadError(SourceCatalog)
		return nil, loadError(SourceCatalog, p.Catalog, err)
	}

	m, err := readNpyFile(p.Matrix)
	if err != nil {
		metrics.RecordCatalogLoadError(SourceMatrix)
		return nil, loadError(SourceMatrix, p.Matrix, err)
	}
	if m.rows != m.cols {
		metrics.RecordCatalogLoadError(SourceMatrix)
		return nil, loadError(SourceMatrix, p.Matrix, fmt.Errorf("matrix is not square: %dx%d", m.rows, m.cols))
	}
	if m.rows != len(names) {
		metrics.RecordCatalogLoadError(SourceMatrix)
		return nil, loadError(SourceMatrix, p.Matrix,
			fmt.Errorf("matrix dimension %d does not match catalog size %d", m.rows, len(names)))
	}

	popular, err := reader.column(ctx, p.Popular, p.NameColumn, "popular")
	if err != nil {
		metrics.RecordCatalogLoadError(SourcePopular)
		return nil, loadError(SourcePopular, p.Popular, err)
	}
	for i := range popular {
		popular[i] = strings.TrimSpace(popular[i])
	}

	metrics.SetCatalogItems(len(names))
	log.Info().
		Int("items", len(names)).
		Int("popular", len(popular)).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	return &Store{
		names:   names,
		index:   index,
		dim:     m.rows,
		matrix:  m.data,
		popular: popular,
	}, nil
}

func loadNames(ctx context.Context, reader *tableReader, path, column string) ([]string, map[string]int, error) {
	names, err := reader.column(ctx, path, column, "names")
	if err != nil {
		return nil, nil, err
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("catalog has no rows")
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, nil, fmt.Errorf("row %d has an empty name", i+1)
		}
		if prev, dup := index[name]; dup {
			return nil, nil, fmt.Errorf("duplicate name %q at rows %d and %d", name, prev+1, i+1)
		}
		index[name] = i
	}
	return names, index, nil
}

// New builds a Store from in-memory data. matrix is row-major and must hold
// len(names) squared values. Names must be unique and non-empty.
func New(names []string, matrix []float32, popular []string) (*Store, error) {
	index := make(map[string]int, len(names))
	for i, n := range names {
		if n == "" {
			return nil, fmt.Errorf("name %d is empty", i)
		}
		if _, dup := index[n]; dup {
			return nil, fmt.Errorf("duplicate name %q", n)
		}
		index[n] = i
	}
	if len(matrix) != len(names)*len(names) {
		return nil, fmt.Errorf("matrix has %d values, want %d", len(matrix), len(names)*len(names))
	}
	return &Store{names: names, index: index, dim: len(names), matrix: matrix, popular: popular}, nil
}

// IndexOf returns the row index of an exact, case-sensitive name.
func (s *Store) IndexOf(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Row returns the similarity vector for index. The slice aliases the
// store's matrix and must not be modified.
func (s *Store) Row(index int) ([]float32, error) {
	if index < 0 || index >= s.dim {
		return nil, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, s.dim)
	}
	return s.matrix[index*s.dim : (index+1)*s.dim : (index+1)*s.dim], nil
}

// Name returns the canonical name at index, or "" when out of range.
func (s *Store) Name(index int) string {
	if index < 0 || index >= len(s.names) {
		return ""
	}
	return s.names[index]
}

// Names returns the canonical names in matrix order. Callers must not modify it.
func (s *Store) Names() []string { return s.names }

// Len returns the number of catalog entries.
func (s *Store) Len() int { return len(s.names) }

// Dim returns the matrix dimension, equal to Len.
func (s *Store) Dim() int { return s.dim }

// Popular returns the popularity list in rank order. Callers must not modify it.
func (s *Store) Popular() []string { return s.popular }
