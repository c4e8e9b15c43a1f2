// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package cache provides a generic, thread-safe LRU cache with TTL support.

LRUCache backs the in-memory enrichment cache: AniList metadata keyed by
title, bounded by capacity and expired after a TTL (24h by default).

# Characteristics

  - O(1) Get, Add and eviction (hash map plus doubly-linked list)
  - Per-entry TTL with lazy expiration on Get

# Usage Example

	c := cache.NewLRUCache[*Metadata](2048, 24*time.Hour)
	c.Add("Naruto", md)
	if md, ok := c.Get("Naruto"); ok {
	    // use md
	}
*/
package cache
