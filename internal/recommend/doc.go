// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package recommend assembles recommendations from the catalog, the name
// resolver, the ranker and the enrichment gateway.
//
// # Request Flow
//
// GetRecommendations runs resolve, rank, enrich and assemble in that order:
//
//  1. A blank query returns OutcomeNoInput without touching any collaborator.
//  2. The resolver maps the query to a catalog title; below the cutoff the
//     result is OutcomeNoMatch.
//  3. The ranker returns the top-K neighbours of the matched title, never the
//     title itself.
//  4. Each neighbour is enriched through the Gateway, at most
//     Config.EnrichConcurrency at a time, each call bounded by
//     Config.EnrichTimeout.
//  5. Results keep rank order. Entries whose enrichment failed are dropped
//     unless Config.KeepUnenriched is set.
//
// # Popular Panel
//
// Popular enriches the first Config.PopularLimit names of the popularity
// list. Ranks come from list position, so a skipped entry leaves a gap.
// View counts are synthetic (see SyntheticViewCounter) and flagged as such.
//
// # Usage
//
//	svc, err := recommend.NewService(cfg, store, resolver.New(store.Names()), gateway)
//	if err != nil {
//	    return err
//	}
//	out, err := svc.GetRecommendations(ctx, "naruto")
package recommend
