// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package enrich

import (
	"context"
	"errors"
)

// Metadata is the display record for one title.
type Metadata struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link"`
}

// Gateway looks up display metadata by title. Any error means "no data";
// callers skip the title and never retry.
type Gateway interface {
	Fetch(ctx context.Context, name string) (*Metadata, error)
}

// GatewayFunc adapts a function to Gateway.
type GatewayFunc func(ctx context.Context, name string) (*Metadata, error)

// Fetch calls f.
func (f GatewayFunc) Fetch(ctx context.Context, name string) (*Metadata, error) {
	return f(ctx, name)
}

var (
	// ErrNotFound means the upstream has no record for the title.
	ErrNotFound = errors.New("enrich: title not found")

	// ErrIncompleteRecord means a record was found but lacks title, image or link.
	ErrIncompleteRecord = errors.New("enrich: incomplete record")

	// ErrUpstreamStatus means the upstream answered with a non-success status.
	ErrUpstreamStatus = errors.New("enrich: upstream status")

	// ErrInvalidResponse means the upstream body could not be decoded.
	ErrInvalidResponse = errors.New("enrich: invalid response")

	// ErrUnavailable means the circuit breaker rejected the call.
	ErrUnavailable = errors.New("enrich: upstream unavailable")
)

// IsMiss reports whether err says the title has no usable record, as opposed
// to the upstream failing.
func IsMiss(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrIncompleteRecord)
}
