// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"errors"
	"fmt"
)

// Dataset sources named in DataLoadError and the catalog_load_errors_total metric.
const (
	SourceCatalog = "catalog"
	SourceMatrix  = "matrix"
	SourcePopular = "popular"
)

// ErrIndexOutOfRange is returned by Row for an index outside [0, Len()).
var ErrIndexOutOfRange = errors.New("catalog: index out of range")

// DataLoadError reports a dataset file that is missing, malformed or
// inconsistent with the rest of the dataset. It is fatal at startup.
type DataLoadError struct {
	Source string // SourceCatalog, SourceMatrix or SourcePopular
	Path   string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s dataset %q: %v", e.Source, e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

func loadError(source, path string, err error) *DataLoadError {
	return &DataLoadError{Source: source, Path: path, Err: err}
}
