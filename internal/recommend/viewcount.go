// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"math/rand/v2"
	"sync"
)

// Bounds of the synthetic view count, inclusive.
const (
	MinSyntheticViews = 10000
	MaxSyntheticViews = 99999
)

// ViewCounter supplies the view count shown on the popular panel.
type ViewCounter interface {
	Views(name string) int
}

// SyntheticViewCounter draws a uniform random count in
// [MinSyntheticViews, MaxSyntheticViews]. There is no real view data behind
// it, so every PopularItem it produces is flagged ViewsSynthetic.
type SyntheticViewCounter struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSyntheticViewCounter returns a counter seeded with seed. A zero seed
// picks a random one.
func NewSyntheticViewCounter(seed uint64) *SyntheticViewCounter {
	if seed == 0 {
		seed = rand.Uint64() //nolint:gosec // display-only placeholder numbers
	}
	return &SyntheticViewCounter{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // display-only placeholder numbers
	}
}

// Views ignores name and returns a fresh random count.
func (c *SyntheticViewCounter) Views(_ string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MinSyntheticViews + c.rng.IntN(MaxSyntheticViews-MinSyntheticViews+1)
}
