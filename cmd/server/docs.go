// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// @title Animerec API
// @version 1.0
// @description Content-based anime recommendations with AniList metadata.
// @description
// @description ## Matching
// @description
// @description The `q` parameter is matched against catalog titles with a case-sensitive
// @description similarity ratio. The best title scoring at least 0.6 wins; an exact title
// @description always wins. Unmatched input returns `outcome: "no_match"` with status 200.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-12T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/animerec/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Title-based recommendations and the popular panel
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
