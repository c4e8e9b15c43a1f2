// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package main provides the animerec CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	humanOutput bool // human-readable output instead of JSON
	noEnrich    bool // skip AniList lookups
	verbose     bool // log at debug level
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors is set, so command and usage errors are printed here.
		os.Exit(reportError(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "animerec",
	Short: "Anime recommendations from the command line",
	Long: `animerec recommends anime similar to a title, using the same dataset,
fuzzy matching and AniList enrichment as the HTTP server.

Configuration is read like the server's: defaults, config.yaml
(or CONFIG_PATH), .env and environment variables such as CATALOG_PATH.
All commands output JSON unless --human is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logging.Init(logging.Config{Level: level, Format: "console", Timestamp: true, Output: os.Stderr})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVar(&noEnrich, "no-enrich", false, "Skip AniList metadata lookups")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level to stderr")
	rootCmd.Version = Version
}

// loadConfig loads configuration, applying the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, exitErrorf(ExitConfigError, "loading configuration: %w", err)
	}
	if noEnrich {
		cfg.Enrichment.Enabled = false
	}
	return cfg, nil
}
