// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

type fixture struct {
	dir   string
	paths Paths
}

// newFixture writes a three-title dataset shaped like the exported pivot table:
// the name column first, followed by per-user rating columns.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	f := &fixture{
		dir: dir,
		paths: Paths{
			Catalog: filepath.Join(dir, "anime_dataset.csv"),
			Matrix:  filepath.Join(dir, "similarity_score.npy"),
			Popular: filepath.Join(dir, "popular_anime.csv"),
		},
	}
	f.write(t, f.paths.Catalog, "name,1001,1002\nNaruto,9,0\nBleach,8,7\nOne Piece,0,10\n")
	f.writeMatrix(t, "(3, 3)", []float64{
		1.0, 0.9, 0.7,
		0.9, 1.0, 0.2,
		0.7, 0.2, 1.0,
	})
	f.write(t, f.paths.Popular, "name,members\nOne Piece,300\nNaruto,250\n")
	return f
}

func (f *fixture) write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) writeMatrix(t *testing.T, shape string, values []float64) {
	t.Helper()
	if err := os.WriteFile(f.paths.Matrix, encodeNpy(t, 1, "<f8", false, shape, values), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	store, err := Load(context.Background(), f.paths)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if store.Len() != 3 || store.Dim() != 3 {
		t.Fatalf("Len/Dim = %d/%d, want 3/3", store.Len(), store.Dim())
	}
	if got := strings.Join(store.Names(), "|"); got != "Naruto|Bleach|One Piece" {
		t.Errorf("Names() = %q, want file order", got)
	}
	if i, ok := store.IndexOf("Bleach"); !ok || i != 1 {
		t.Errorf("IndexOf(Bleach) = %d, %v", i, ok)
	}
	if _, ok := store.IndexOf("bleach"); ok {
		t.Error("IndexOf should be case-sensitive")
	}

	row, err := store.Row(0)
	if err != nil {
		t.Fatalf("Row(0) error = %v", err)
	}
	if len(row) != 3 || row[1] != float32(0.9) {
		t.Errorf("Row(0) = %v", row)
	}

	if got := strings.Join(store.Popular(), "|"); got != "One Piece|Naruto" {
		t.Errorf("Popular() = %q", got)
	}
}

func TestLoad_CustomNameColumn(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.write(t, f.paths.Catalog, "title,score\nNaruto,1\nBleach,2\nOne Piece,3\n")
	f.write(t, f.paths.Popular, "title\nBleach\n")
	f.paths.NameColumn = "title"

	store, err := Load(context.Background(), f.paths)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if store.Name(2) != "One Piece" {
		t.Errorf("Name(2) = %q", store.Name(2))
	}
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(t *testing.T, f *fixture)
		wantSource string
	}{
		{
			name:       "missing catalog file",
			mutate:     func(t *testing.T, f *fixture) { f.paths.Catalog = filepath.Join(f.dir, "nope.csv") },
			wantSource: SourceCatalog,
		},
		{
			name: "catalog without name column",
			mutate: func(t *testing.T, f *fixture) {
				f.write(t, f.paths.Catalog, "title,1001\nNaruto,1\nBleach,2\nOne Piece,3\n")
			},
			wantSource: SourceCatalog,
		},
		{
			name: "duplicate names",
			mutate: func(t *testing.T, f *fixture) {
				f.write(t, f.paths.Catalog, "name\nNaruto\nNaruto\nBleach\n")
			},
			wantSource: SourceCatalog,
		},
		{
			name:       "missing matrix file",
			mutate:     func(t *testing.T, f *fixture) { f.paths.Matrix = filepath.Join(f.dir, "nope.npy") },
			wantSource: SourceMatrix,
		},
		{
			name: "matrix dimension mismatch",
			mutate: func(t *testing.T, f *fixture) {
				f.writeMatrix(t, "(2, 2)", []float64{1, 0, 0, 1})
			},
			wantSource: SourceMatrix,
		},
		{
			name: "non-square matrix",
			mutate: func(t *testing.T, f *fixture) {
				f.writeMatrix(t, "(3, 2)", []float64{1, 0, 0, 1, 0, 0})
			},
			wantSource: SourceMatrix,
		},
		{
			name: "matrix is not npy",
			mutate: func(t *testing.T, f *fixture) {
				f.write(t, f.paths.Matrix, "1,0,0\n0,1,0\n0,0,1\n")
			},
			wantSource: SourceMatrix,
		},
		{
			name:       "missing popular file",
			mutate:     func(t *testing.T, f *fixture) { f.paths.Popular = filepath.Join(f.dir, "nope.csv") },
			wantSource: SourcePopular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tt.mutate(t, f)

			_, err := Load(context.Background(), f.paths)
			var loadErr *DataLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Load() error = %v, want *DataLoadError", err)
			}
			if loadErr.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q (%v)", loadErr.Source, tt.wantSource, err)
			}
		})
	}
}

func TestStoreRow_OutOfRange(t *testing.T) {
	t.Parallel()

	store, err := New([]string{"A", "B"}, []float32{1, 0, 0, 1}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, idx := range []int{-1, 2, 100} {
		if _, err := store.Row(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Row(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	if store.Name(5) != "" {
		t.Error("Name out of range should be empty")
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	if _, err := New([]string{"A", "A"}, make([]float32, 4), nil); err == nil {
		t.Error("expected duplicate name error")
	}
	if _, err := New([]string{"A", ""}, make([]float32, 4), nil); err == nil {
		t.Error("expected empty name error")
	}
	if _, err := New([]string{"A", "B"}, make([]float32, 3), nil); err == nil {
		t.Error("expected matrix size error")
	}
}

func TestLoader_MemoizesSingleLoad(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	want, _ := New([]string{"A"}, []float32{1}, nil)
	l := &Loader{load: func(context.Context, Paths) (*Store, error) {
		calls.Add(1)
		return want, nil
	}}

	if l.Loaded() {
		t.Fatal("Loaded() before Get should be false")
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := l.Get(context.Background())
			if err != nil || got != want {
				t.Errorf("Get() = %p, %v", got, err)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("load called %d times, want 1", calls.Load())
	}
	if !l.Loaded() {
		t.Error("Loaded() should be true after a successful load")
	}
}

func TestLoader_MemoizesError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	l := &Loader{load: func(_ context.Context, p Paths) (*Store, error) {
		calls.Add(1)
		return nil, loadError(SourceMatrix, p.Matrix, errors.New("boom"))
	}}

	for i := 0; i < 3; i++ {
		if _, err := l.Get(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	}
	if calls.Load() != 1 {
		t.Errorf("load called %d times, want 1", calls.Load())
	}
	if l.Loaded() {
		t.Error("Loaded() should be false after a failed load")
	}
}
