// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/animerec/internal/enrich"
	"github.com/tomtom215/animerec/internal/recommend"
)

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// outputJSON writes a value as indented JSON to stdout.
func outputJSON(v any) error {
	return writeJSON(os.Stdout, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportError writes err in the selected output format and returns the
// process exit code for it.
func reportError(err error) int {
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	} else {
		_ = outputJSON(ErrorResponse{Error: err.Error()})
	}
	return exitCode(err)
}

// printOutcomeHuman renders a recommendation outcome as text.
func printOutcomeHuman(w io.Writer, out *recommend.Outcome) {
	if out.Kind != recommend.OutcomeMatched {
		fmt.Fprintln(w, out.Message)
		return
	}

	if out.Exact {
		fmt.Fprintf(w, "Because you searched for %s:\n", out.MatchedName)
	} else {
		fmt.Fprintf(w, "Showing results for %s (match %.0f%%):\n", out.MatchedName, out.MatchScore*100)
	}
	if out.Notice != "" {
		fmt.Fprintln(w, out.Notice)
	}
	if len(out.Results) == 0 {
		fmt.Fprintln(w, out.Message)
		return
	}

	for _, r := range out.Results {
		fmt.Fprintf(w, "%2d. %s\n", r.Rank, displayTitle(r.Name, titleOf(r.Metadata)))
		if r.Metadata != nil {
			fmt.Fprintf(w, "    %s\n", r.Metadata.Link)
		}
	}
}

// printPopularHuman renders the popular panel as text.
func printPopularHuman(w io.Writer, items []recommend.PopularItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, recommend.MessageNoResults)
		return
	}
	fmt.Fprintln(w, "Popular anime:")
	for _, it := range items {
		fmt.Fprintf(w, "%2d. %s  (~%d views, synthetic)\n", it.Rank, displayTitle(it.Name, titleOf(it.Metadata)), it.SyntheticViews)
	}
}

func titleOf(md *enrich.Metadata) string {
	if md == nil {
		return ""
	}
	return md.Title
}

// displayTitle shows the catalog name, prefixed by the AniList title when the
// two differ by more than letter case.
func displayTitle(name, title string) string {
	if title == "" || strings.EqualFold(title, name) {
		return name
	}
	return fmt.Sprintf("%s [%s]", title, name)
}
