// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(popularCmd)
	popularCmd.Flags().IntVarP(&popularLimit, "limit", "n", 0, "Number of entries (default from RECOMMEND_POPULAR_LIMIT)")
}

var popularLimit int

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show the popular anime panel",
	Long: `Show the top entries of the popularity list with AniList metadata.
View counts are synthetic placeholders.`,
	Args: cobra.NoArgs,
	RunE: runPopular,
}

func runPopular(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if popularLimit > 0 {
		cfg.Recommend.PopularLimit = popularLimit
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	components, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeComponents(components)

	items, err := components.Service.Popular(ctx)
	if err != nil {
		return exitErrorf(ExitError, "building popular panel: %w", err)
	}

	if humanOutput {
		printPopularHuman(os.Stdout, items)
		return nil
	}
	return outputJSON(items)
}
