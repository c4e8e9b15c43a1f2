// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package enrich

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/animerec/internal/cache"
)

// StoreType selects the enrichment cache backend.
type StoreType string

const (
	// StoreMemory keeps records in a bounded in-process LRU (default).
	StoreMemory StoreType = "memory"

	// StoreBadger persists records in BadgerDB across restarts.
	StoreBadger StoreType = "badger"

	// StoreNone disables caching.
	StoreNone StoreType = "none"
)

// Store caches metadata by title. Only found records are stored.
type Store interface {
	Get(ctx context.Context, name string) (*Metadata, bool, error)
	Set(ctx context.Context, name string, md *Metadata, ttl time.Duration) error
	io.Closer
}

// StoreConfig configures NewStore.
type StoreConfig struct {
	Type     StoreType
	Path     string // badger directory
	Capacity int    // memory capacity
	TTL      time.Duration
}

// NewStore opens the configured backend. It returns a nil Store for StoreNone.
func NewStore(cfg StoreConfig) (Store, error) {
	switch cfg.Type {
	case StoreNone:
		return nil, nil
	case StoreBadger:
		opts := badger.DefaultOptions(cfg.Path)
		opts.Logger = nil
		db, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("open badger db for enrichment cache: %w", err)
		}
		return NewBadgerStore(db), nil
	case StoreMemory, "":
		return NewMemoryStore(cfg.Capacity, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown enrichment cache backend %q", cfg.Type)
	}
}

// MemoryStore is an in-process LRU Store.
type MemoryStore struct {
	lru *cache.LRUCache[Metadata]
}

// NewMemoryStore creates a MemoryStore holding up to capacity records.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{lru: cache.NewLRUCache[Metadata](capacity, ttl)}
}

// Get returns a copy of the cached record.
func (s *MemoryStore) Get(_ context.Context, name string) (*Metadata, bool, error) {
	md, ok := s.lru.Get(name)
	if !ok {
		return nil, false, nil
	}
	return &md, true, nil
}

// Set stores a copy of md.
func (s *MemoryStore) Set(_ context.Context, name string, md *Metadata, ttl time.Duration) error {
	if md == nil {
		return nil
	}
	s.lru.AddWithTTL(name, *md, ttl)
	return nil
}

// Len returns the number of cached records.
func (s *MemoryStore) Len() int {
	return s.lru.Len()
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

const badgerKeyPrefix = "anilist:"

// BadgerStore persists records in BadgerDB using native key TTLs.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore wraps an open DB. Close closes the DB.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Get reads a record; expired keys are invisible to badger reads.
func (s *BadgerStore) Get(_ context.Context, name string) (*Metadata, bool, error) {
	var md Metadata

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &md)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached metadata: %w", err)
	}
	return &md, true, nil
}

// Set writes md with the given TTL.
func (s *BadgerStore) Set(_ context.Context, name string, md *Metadata, ttl time.Duration) error {
	if md == nil {
		return nil
	}
	data, err := json.Marshal(md)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(badgerKeyPrefix+name), data)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
}

// Close closes the underlying DB.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
