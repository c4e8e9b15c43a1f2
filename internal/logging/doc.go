// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package logging provides centralized zerolog-based structured logging for animerec.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("items", n).Msg("Catalog loaded")
//	logging.Ctx(ctx).Warn().Err(err).Str("title", name).Msg("Enrichment unavailable")
//
// Component loggers carry a "component" field:
//
//	log := logging.WithComponent("enrich")
//
// Request-scoped logging picks up request_id and correlation_id from the
// context; the API layer stores both for every request.
//
// # Supervisor integration
//
// Suture reports events through sutureslog, which needs an *slog.Logger.
// NewSlogLogger returns one backed by the global zerolog logger.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(), and prefer structured
// fields over Msgf.
package logging
