// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package resolver

import (
	"math"
	"testing"
)

var titles = []string{
	"Naruto",
	"Naruto: Shippuuden",
	"Bleach",
	"One Piece",
	"Hunter x Hunter",
}

func TestBestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantName  string
		wantScore float64
		wantExact bool
		wantOK    bool
	}{
		{"exact match", "Bleach", "Bleach", 1.0, true, true},
		{"case difference", "naruto", "Naruto", 10.0 / 12.0, false, true},
		{"missing letter", "One Pice", "One Piece", 16.0 / 17.0, false, true},
		{"typo", "Bleech", "Bleach", 10.0 / 12.0, false, true},
		{"unrelated", "zzzzzz", "", 0, false, false},
		{"empty", "", "", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := BestMatch(tt.query, titles, DefaultCutoff)
			if ok != tt.wantOK {
				t.Fatalf("BestMatch(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if math.Abs(got.Score-tt.wantScore) > 1e-9 {
				t.Errorf("Score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Exact != tt.wantExact {
				t.Errorf("Exact = %v, want %v", got.Exact, tt.wantExact)
			}
			if got.Notice != "Did you mean: "+tt.wantName+"?" {
				t.Errorf("Notice = %q", got.Notice)
			}
			if titles[got.Index] != got.Name {
				t.Errorf("Index %d does not point at %q", got.Index, got.Name)
			}
		})
	}
}

func TestBestMatch_TieKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	// "abcz" scores 0.75 against both names.
	got, ok := BestMatch("abcz", []string{"abcx", "abcy"}, DefaultCutoff)
	if !ok || got.Name != "abcx" {
		t.Errorf("BestMatch = %q, %v; want abcx", got.Name, ok)
	}

	got, ok = BestMatch("abcz", []string{"abcy", "abcx"}, DefaultCutoff)
	if !ok || got.Name != "abcy" {
		t.Errorf("BestMatch = %q, %v; want abcy", got.Name, ok)
	}
}

func TestBestMatch_CutoffIsInclusive(t *testing.T) {
	t.Parallel()

	// 0.75 exactly.
	if _, ok := BestMatch("abcz", []string{"abcx"}, 0.75); !ok {
		t.Error("a ratio equal to the cutoff should be accepted")
	}
	if _, ok := BestMatch("abcz", []string{"abcx"}, 0.76); ok {
		t.Error("a ratio below the cutoff should be rejected")
	}
}

func TestBestMatch_Unicode(t *testing.T) {
	t.Parallel()

	names := []string{"Shingeki no Kyojin", "進撃の巨人"}
	got, ok := BestMatch("進撃の巨人", names, DefaultCutoff)
	if !ok || !got.Exact || got.Index != 1 {
		t.Errorf("BestMatch = %+v, %v", got, ok)
	}

	// One code point different out of five: ratio 8/10.
	got, ok = BestMatch("進撃の巨大", names, DefaultCutoff)
	if !ok || got.Index != 1 || math.Abs(got.Score-0.8) > 1e-9 {
		t.Errorf("BestMatch = %+v, %v", got, ok)
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := New(titles)

	if _, ok := r.Resolve("   "); ok {
		t.Error("blank query should not resolve")
	}

	got, ok := r.Resolve("  Bleach \n")
	if !ok || !got.Exact || got.Name != "Bleach" {
		t.Errorf("Resolve trimmed query = %+v, %v", got, ok)
	}

	if _, ok := r.Resolve("zzzzzz"); ok {
		t.Error("unrelated query should not resolve")
	}
}

func TestResolver_WithCutoff(t *testing.T) {
	t.Parallel()

	strict := New(titles, WithCutoff(0.9))
	if strict.Cutoff() != 0.9 {
		t.Fatalf("Cutoff() = %v, want 0.9", strict.Cutoff())
	}
	if _, ok := strict.Resolve("Bleech"); ok {
		t.Error("0.83 ratio should fail a 0.9 cutoff")
	}

	ignored := New(titles, WithCutoff(0), WithCutoff(1.5))
	if ignored.Cutoff() != DefaultCutoff {
		t.Errorf("out-of-range cutoffs should be ignored, got %v", ignored.Cutoff())
	}
}

func BenchmarkBestMatch(b *testing.B) {
	names := make([]string, 0, 10000)
	for i := 0; i < 2000; i++ {
		names = append(names, titles...)
	}
	// Duplicates are fine for timing purposes.
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BestMatch("Hunter Hunter", names, DefaultCutoff)
	}
}
