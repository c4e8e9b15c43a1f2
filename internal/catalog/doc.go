// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package catalog loads and serves the precomputed recommendation dataset.
//
// Three files make up the dataset:
//
//   - anime_dataset.csv: one row per title; the name column fixes the
//     row/column order of the similarity matrix
//   - similarity_score.npy: a square float matrix in NumPy format
//   - popular_anime.csv: a name column ordered by external rank
//
// CSV files are read through an in-memory DuckDB connection using read_csv,
// so only the name column is materialized. The .npy reader accepts format
// versions 1 to 3 with float32 or float64 data in either byte order.
//
// Load returns *DataLoadError for any missing, malformed or inconsistent file.
// Loader memoizes one load for the process lifetime.
package catalog
