// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package models defines the HTTP wire types shared by the API layer and its
generated Swagger documentation.

Key Components:

  - APIResponse: Standard response wrapper ({status, data, metadata, error})
  - APIError: Machine-readable error code plus message
  - HealthLive, HealthReady: Probe payloads

Domain payloads (recommend.Outcome, recommend.PopularItem) are carried in
APIResponse.Data unchanged; this package only holds the envelope.
*/
package models
