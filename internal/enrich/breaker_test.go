// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package enrich

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// countingGateway returns err (or a record when err is nil) and counts calls.
type countingGateway struct {
	calls atomic.Int32
	err   error
}

func (g *countingGateway) Fetch(_ context.Context, name string) (*Metadata, error) {
	g.calls.Add(1)
	if g.err != nil {
		return nil, g.err
	}
	return &Metadata{Title: name, ImageURL: "img", Link: "link"}, nil
}

func testBreakerSettings(name string) BreakerSettings {
	s := DefaultBreakerSettings()
	s.Name = name
	s.MinRequests = 4
	s.Timeout = time.Hour
	return s
}

func TestBreakerGateway_OpensOnUpstreamFailures(t *testing.T) {
	t.Parallel()

	next := &countingGateway{err: ErrUpstreamStatus}
	g := NewBreakerGateway(next, testBreakerSettings("test-open"))

	for i := 0; i < 4; i++ {
		if _, err := g.Fetch(context.Background(), "X"); !errors.Is(err, ErrUpstreamStatus) {
			t.Fatalf("call %d error = %v", i, err)
		}
	}
	if g.State() != "open" {
		t.Fatalf("State() = %q, want open", g.State())
	}

	_, err := g.Fetch(context.Background(), "X")
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("open breaker error = %v, want ErrUnavailable wrapping ErrOpenState", err)
	}
	if next.calls.Load() != 4 {
		t.Errorf("upstream calls = %d, want 4", next.calls.Load())
	}
}

func TestBreakerGateway_MissesDoNotTrip(t *testing.T) {
	t.Parallel()

	next := &countingGateway{err: ErrNotFound}
	g := NewBreakerGateway(next, testBreakerSettings("test-miss"))

	for i := 0; i < 20; i++ {
		if _, err := g.Fetch(context.Background(), "Unknown"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	}
	if g.State() != "closed" {
		t.Errorf("State() = %q, want closed", g.State())
	}
}

func TestBreakerGateway_PassesThroughSuccess(t *testing.T) {
	t.Parallel()

	g := NewBreakerGateway(&countingGateway{}, BreakerSettings{Name: "test-ok"})
	md, err := g.Fetch(context.Background(), "Bleach")
	if err != nil || md.Title != "Bleach" {
		t.Errorf("Fetch() = %+v, %v", md, err)
	}
}

func TestBreakerGateway_DefaultsFilled(t *testing.T) {
	t.Parallel()

	g := NewBreakerGateway(&countingGateway{}, BreakerSettings{})
	if g.name != "anilist-api" {
		t.Errorf("name = %q, want anilist-api", g.name)
	}
}

func TestStateHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		str   string
		num   float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
		{gobreaker.State(99), "unknown", -1},
	}
	for _, tt := range tests {
		if got := stateToString(tt.state); got != tt.str {
			t.Errorf("stateToString(%v) = %q, want %q", tt.state, got, tt.str)
		}
		if got := stateToFloat(tt.state); got != tt.num {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.num)
		}
	}
}
