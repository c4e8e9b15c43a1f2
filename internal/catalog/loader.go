// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"sync"
	"sync/atomic"
)

// Loader memoizes a single catalog load. Concurrent first callers share
// one load and every caller sees the same Store or error.
type Loader struct {
	paths Paths
	load  func(context.Context, Paths) (*Store, error)

	once   sync.Once
	store  *Store
	err    error
	loaded atomic.Bool
}

// NewLoader returns a Loader for the given dataset paths.
func NewLoader(paths Paths) *Loader {
	return &Loader{paths: paths, load: Load}
}

// Get loads the catalog on first use and returns the memoized result.
// The context of the first caller governs the load.
func (l *Loader) Get(ctx context.Context) (*Store, error) {
	l.once.Do(func() {
		l.store, l.err = l.load(ctx, l.paths)
		if l.err == nil {
			l.loaded.Store(true)
		}
	})
	return l.store, l.err
}

// Loaded reports whether a load has succeeded. It never triggers a load.
func (l *Loader) Loaded() bool {
	return l.loaded.Load()
}
