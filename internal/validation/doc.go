// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is built lazily and shared; validator caches
struct metadata, so reuse is cheap and safe across goroutines.

# Field Names

Errors name fields by their `query` tag, then their `json` tag, then the Go
field name, so a client sees the parameter it actually sent:

	type recommendationsQuery struct {
	    Q string `query:"q" validate:"max=256,title"`
	}

A 300-character q produces "q must be at most 256 characters".

# Custom Tags

  - title: rejects control characters; any printable Unicode is accepted

# Usage

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
	    return
	}

Every failure uses the VALIDATION_ERROR code.
*/
package validation
