// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package services wraps server components as suture services.
//
//   - HTTPServerService: net/http server with graceful shutdown
//   - PopularWarmupService: periodic popular panel build that fills the
//     enrichment cache
//
// Each service implements fmt.Stringer so supervisor events name it.
package services
