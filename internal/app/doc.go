// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package app wires configuration into the recommendation stack shared by
// the server and the CLI: catalog, resolver, the enrichment gateway
// (AniList client, circuit breaker, cache) and recommend.Service.
package app
