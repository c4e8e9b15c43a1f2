// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"

	"github.com/tomtom215/animerec/internal/catalog"
)

// writeDataset writes a two-title catalog, its similarity matrix and a
// popularity list into dir and points the configuration at them.
func writeDataset(t *testing.T, dir string) {
	t.Helper()

	catalogPath := filepath.Join(dir, "anime_dataset.csv")
	popularPath := filepath.Join(dir, "popular_anime.csv")
	matrixPath := filepath.Join(dir, "similarity_score.npy")

	if err := os.WriteFile(catalogPath, []byte("name\nNaruto\nBleach\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(popularPath, []byte("name\nNaruto\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	dict := "{'descr': '<f4', 'fortran_order': False, 'shape': (2, 2), }"
	pad := (64 - (10+len(dict)+1)%64) % 64
	header := dict + strings.Repeat(" ", pad) + "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	_ = binary.Write(&buf, binary.LittleEndian, []float32{1, 0.5, 0.5, 1})
	if err := os.WriteFile(matrixPath, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CATALOG_PATH", catalogPath)
	t.Setenv("POPULAR_PATH", popularPath)
	t.Setenv("SIMILARITY_PATH", matrixPath)
}

func commandWithContext(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(ctx)
	return cmd
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("unknown flag"), ExitError},
		{"config", exitErrorf(ExitConfigError, "loading configuration: %w", errors.New("bad")), ExitConfigError},
		{"wrapped data", fmt.Errorf("outer: %w", exitErrorf(ExitDataError, "missing")), ExitDataError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestRunRecommend_MissingDatasetReturnsDataError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CATALOG_PATH", filepath.Join(dir, "missing.csv"))
	t.Setenv("ENRICHMENT_ENABLED", "false")

	err := runRecommend(commandWithContext(context.Background()), []string{"Naruto"})
	if err == nil {
		t.Fatal("expected an error for a missing catalog")
	}
	if got := exitCode(err); got != ExitDataError {
		t.Errorf("exitCode = %d, want %d (err: %v)", got, ExitDataError, err)
	}
	var loadErr *catalog.DataLoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("error %v does not wrap *catalog.DataLoadError", err)
	}
}

func TestRunPopular_InvalidCacheBackendReturnsConfigError(t *testing.T) {
	t.Setenv("ENRICH_CACHE_BACKEND", "redis")

	err := runPopular(commandWithContext(context.Background()), nil)
	if got := exitCode(err); got != ExitConfigError {
		t.Errorf("exitCode = %d, want %d (err: %v)", got, ExitConfigError, err)
	}
}

// A failing command must still close the badger cache so the directory lock
// is released.
func TestRunPopular_ErrorPathClosesBadgerCache(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The upstream aborts the command mid-request, so Popular fails.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		cancel()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	cacheDir := filepath.Join(dir, "enrich-cache")
	t.Setenv("ANILIST_ENDPOINT", upstream.URL)
	t.Setenv("ANILIST_RATE_LIMIT", "0")
	t.Setenv("ENRICH_CACHE_BACKEND", "badger")
	t.Setenv("ENRICH_CACHE_PATH", cacheDir)

	err := runPopular(commandWithContext(ctx), nil)
	if err == nil {
		t.Fatal("expected the cancelled popular panel to fail")
	}
	if got := exitCode(err); got != ExitError {
		t.Errorf("exitCode = %d, want %d (err: %v)", got, ExitError, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error %v does not wrap context.Canceled", err)
	}

	db, err := badger.Open(badger.DefaultOptions(cacheDir).WithLogger(nil))
	if err != nil {
		t.Fatalf("badger cache still locked after command returned: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("close reopened cache: %v", err)
	}
}
