// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/animerec/internal/app"
	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/logging"
)

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().IntVarP(&topK, "top", "k", 0, "Number of recommendations (default from RECOMMEND_TOP_K)")
	recommendCmd.Flags().BoolVar(&keepUnenriched, "keep-unenriched", false, "Keep titles whose AniList lookup failed")
}

var (
	topK           int
	keepUnenriched bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <title>",
	Short: "Recommend anime similar to a title",
	Long: `Recommend anime similar to a title. The title may be misspelled; it is
matched against the catalog and the closest entry is used.

Multiple arguments are joined with spaces, so quoting is optional:

  animerec recommend Naruto
  animerec recommend hunter x hunter --human`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecommend,
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if topK > 0 {
		cfg.Recommend.TopK = topK
	}
	if keepUnenriched {
		cfg.Recommend.KeepUnenriched = true
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	components, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeComponents(components)

	out, err := components.Service.GetRecommendations(ctx, strings.Join(args, " "))
	if err != nil {
		return exitErrorf(ExitDataError, "computing recommendations: %w", err)
	}

	if humanOutput {
		printOutcomeHuman(os.Stdout, out)
		return nil
	}
	return outputJSON(out)
}

// build loads the dataset and wires the service. A dataset failure maps to
// ExitDataError, anything else to ExitConfigError.
func build(ctx context.Context, cfg *config.Config) (*app.Components, error) {
	components, err := app.Build(ctx, cfg)
	if err != nil {
		var loadErr *catalog.DataLoadError
		if errors.As(err, &loadErr) {
			return nil, exitErrorf(ExitDataError, "%w", err)
		}
		return nil, exitErrorf(ExitConfigError, "%w", err)
	}
	return components, nil
}

// closeComponents releases the enrichment cache. A badger cache must be
// closed for its directory lock to be released.
func closeComponents(c *app.Components) {
	if err := c.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close enrichment cache")
	}
}
