// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/logging"
)

// MaxQueryLength is the longest accepted title query, in characters.
const MaxQueryLength = 256

// recommendationsQuery holds the validated query parameters of Recommendations.
type recommendationsQuery struct {
	Q string `query:"q" validate:"max=256,title"`
}

// Recommendations handles title-based recommendation requests.
//
// A blank or unmatched title is not an HTTP error: the outcome field is
// "no_input" or "no_match" and message holds the text to show the user.
//
// @Summary Recommend similar anime
// @Description Resolves q to the closest catalog title (fuzzy, case-sensitive ratio, cutoff 0.6), ranks the most similar titles from the precomputed similarity matrix and enriches each with AniList metadata. Titles whose metadata cannot be fetched are omitted.
// @Tags Recommendations
// @Produce json
// @Param q query string false "Anime title, possibly misspelled" maxlength(256)
// @Success 200 {object} models.APIResponse{data=recommend.Outcome} "Recommendation outcome"
// @Failure 400 {object} models.APIResponse "Invalid query"
// @Failure 500 {object} models.APIResponse "Catalog read failure"
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.service == nil {
		respondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, "Catalog is not loaded yet", nil)
		return
	}

	req := recommendationsQuery{Q: r.URL.Query().Get("q")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	out, err := h.service.GetRecommendations(r.Context(), req.Q)
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeRecommendation, "Failed to compute recommendations", err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("query", sanitizeLogValue(out.Query)).
		Str("outcome", out.Kind.String()).
		Int("results", len(out.Results)).
		Msg("Recommendation request served")

	respondSuccess(w, r, out, start)
}

// Popular handles popular panel requests.
//
// @Summary Popular anime panel
// @Description Returns the top entries of the popularity list with AniList metadata. Rank is the position in the list; entries without metadata are omitted, leaving gaps. synthetic_views is a random placeholder, flagged by views_synthetic.
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]recommend.PopularItem} "Popular panel"
// @Failure 500 {object} models.APIResponse "Request aborted"
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /popular [get]
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.service == nil {
		respondError(w, http.StatusServiceUnavailable, CodeServiceUnavailable, "Catalog is not loaded yet", nil)
		return
	}

	items, err := h.service.Popular(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeRecommendation, "Failed to build popular panel", err)
		return
	}

	respondSuccess(w, r, items, start)
}
