// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/enrich"
	"github.com/tomtom215/animerec/internal/recommend"
)

func TestInspectStore(t *testing.T) {
	t.Parallel()

	store, err := catalog.New(
		[]string{"Naruto", "Bleach", "One Piece"},
		[]float32{
			1.0, 0.9, 0.8,
			0.9, 0.5, 0.6, // Bleach ranks Naruto above itself
			0.8, 0.6, 1.0,
		},
		[]string{"One Piece", "", "Dragon Ball"},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	got := inspectStore(store)
	if got.Status != "warnings" || got.Titles != 3 || got.Popular != 3 {
		t.Errorf("result = %+v", got)
	}

	want := []CheckIssue{
		{Type: IssueBlankPopular, Index: 1},
		{Type: IssuePopularNotFound, Name: "Dragon Ball", Index: 2},
		{Type: IssueSelfNotTop, Name: "Bleach", Index: 1},
	}
	if len(got.Issues) != len(want) {
		t.Fatalf("issues = %+v, want %+v", got.Issues, want)
	}
	for i := range want {
		if got.Issues[i] != want[i] {
			t.Errorf("issue %d = %+v, want %+v", i, got.Issues[i], want[i])
		}
	}
}

func TestInspectStore_Clean(t *testing.T) {
	t.Parallel()

	store, err := catalog.New([]string{"A", "B"}, []float32{1, 0.2, 0.2, 1}, []string{"B"})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	got := inspectStore(store)
	if got.Status != "ok" || len(got.Issues) != 0 {
		t.Errorf("result = %+v", got)
	}
}

func TestPrintOutcomeHuman(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		out  *recommend.Outcome
		want []string
	}{
		{
			name: "no input",
			out:  &recommend.Outcome{Kind: recommend.OutcomeNoInput, Message: recommend.MessageNoInput},
			want: []string{recommend.MessageNoInput},
		},
		{
			name: "fuzzy match",
			out: &recommend.Outcome{
				Kind:        recommend.OutcomeMatched,
				MatchedName: "Naruto",
				MatchScore:  0.83,
				Results: []recommend.Recommendation{
					{Rank: 1, Name: "Bleach", Metadata: &enrich.Metadata{Title: "BLEACH", Link: "https://anilist.co/anime/269"}},
					{Rank: 3, Name: "Shingeki no Kyojin", Metadata: &enrich.Metadata{Title: "Attack on Titan", Link: "https://anilist.co/anime/16498"}},
					{Rank: 4, Name: "Monster"},
				},
			},
			want: []string{
				"Showing results for Naruto (match 83%):",
				" 1. Bleach\n    https://anilist.co/anime/269",
				" 3. Attack on Titan [Shingeki no Kyojin]",
				" 4. Monster\n",
			},
		},
		{
			name: "matched without results",
			out: &recommend.Outcome{
				Kind: recommend.OutcomeMatched, MatchedName: "Naruto", Exact: true,
				Message: recommend.MessageNoResults,
			},
			want: []string{"Because you searched for Naruto:", recommend.MessageNoResults},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			printOutcomeHuman(&buf, tt.out)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output missing %q:\n%s", w, buf.String())
				}
			}
		})
	}
}

func TestPrintPopularHuman(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printPopularHuman(&buf, []recommend.PopularItem{
		{Rank: 1, Name: "One Piece", Metadata: &enrich.Metadata{Title: "ONE PIECE"}, SyntheticViews: 12345},
		{Rank: 4, Name: "Bleach", SyntheticViews: 54321},
	})
	for _, w := range []string{" 1. One Piece  (~12345 views, synthetic)", " 4. Bleach  (~54321 views, synthetic)"} {
		if !strings.Contains(buf.String(), w) {
			t.Errorf("output missing %q:\n%s", w, buf.String())
		}
	}

	buf.Reset()
	printPopularHuman(&buf, nil)
	if !strings.Contains(buf.String(), recommend.MessageNoResults) {
		t.Errorf("empty panel output = %q", buf.String())
	}
}

func TestDisplayTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, catalog, title, want string
	}{
		{"no metadata", "Monster", "", "Monster"},
		{"identical", "Naruto", "Naruto", "Naruto"},
		{"case only", "One Piece", "ONE PIECE", "One Piece"},
		{"different title", "Shingeki no Kyojin", "Attack on Titan", "Attack on Titan [Shingeki no Kyojin]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := displayTitle(tt.catalog, tt.title); got != tt.want {
				t.Errorf("displayTitle(%q, %q) = %q, want %q", tt.catalog, tt.title, got, tt.want)
			}
		})
	}
}

func TestWriteJSON_OutcomeKindAsText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeJSON(&buf, &recommend.Outcome{Kind: recommend.OutcomeNoMatch, Query: "zzz"}); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"outcome": "no_match"`) {
		t.Errorf("json = %s", buf.String())
	}
}

func TestCommandTree(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"recommend", "popular", "check"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered (err=%v)", name, err)
		}
	}
	if rootCmd.PersistentFlags().Lookup("human") == nil {
		t.Error("--human flag missing")
	}
}
