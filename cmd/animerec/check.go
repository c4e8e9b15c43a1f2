// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/animerec/internal/app"
	"github.com/tomtom215/animerec/internal/catalog"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the dataset files",
	Long: `Load the catalog, similarity matrix and popularity list exactly as the
server does, then report entries that would behave oddly at request time.
Exits with code 3 when the dataset cannot be loaded.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status  string       `json:"status"` // "ok" or "warnings"
	Titles  int          `json:"titles"`
	Popular int          `json:"popular"`
	Issues  []CheckIssue `json:"issues"`
}

// CheckIssue is one finding. None of them prevents the server from starting.
type CheckIssue struct {
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
	Index int    `json:"index"`
}

// Issue types.
const (
	IssueBlankPopular    = "blank_popular_entry"    // skipped by the popular panel
	IssuePopularNotFound = "popular_not_in_catalog" // shown, but cannot be recommended from
	IssueSelfNotTop      = "self_not_most_similar"  // a row ranks another title above itself
)

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := catalog.Load(cmd.Context(), app.DatasetPaths(cfg))
	if err != nil {
		return exitErrorf(ExitDataError, "%w", err)
	}

	result := inspectStore(store)

	if humanOutput {
		fmt.Fprintf(os.Stdout, "Catalog: %d titles, popularity list: %d entries\n", result.Titles, result.Popular)
		if len(result.Issues) == 0 {
			fmt.Fprintln(os.Stdout, "No issues found.")
			return nil
		}
		for _, is := range result.Issues {
			fmt.Fprintf(os.Stdout, "  %-24s #%d %s\n", is.Type, is.Index, is.Name)
		}
		return nil
	}
	return outputJSON(result)
}

// inspectStore reports dataset quirks. Index is 0-based in the popularity
// list for popular issues and in the catalog for matrix issues.
func inspectStore(store *catalog.Store) CheckResult {
	result := CheckResult{
		Status:  "ok",
		Titles:  store.Len(),
		Popular: len(store.Popular()),
		Issues:  []CheckIssue{},
	}

	for i, name := range store.Popular() {
		switch {
		case strings.TrimSpace(name) == "":
			result.Issues = append(result.Issues, CheckIssue{Type: IssueBlankPopular, Index: i})
		default:
			if _, ok := store.IndexOf(name); !ok {
				result.Issues = append(result.Issues, CheckIssue{Type: IssuePopularNotFound, Name: name, Index: i})
			}
		}
	}

	for i := range store.Len() {
		row, err := store.Row(i)
		if err != nil {
			continue
		}
		for j, v := range row {
			if j != i && v > row[i] {
				result.Issues = append(result.Issues, CheckIssue{Type: IssueSelfNotTop, Name: store.Name(i), Index: i})
				break
			}
		}
	}

	if len(result.Issues) > 0 {
		result.Status = "warnings"
	}
	return result
}
