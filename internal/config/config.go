// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"time"

	"github.com/tomtom215/animerec/internal/logging"
)

// Config holds all application configuration.
//
// Values are layered: defaults, then config file, then environment variables.
// See LoadWithKoanf for the precedence rules.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Dataset    DatasetConfig    `koanf:"dataset"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Enrichment EnrichmentConfig `koanf:"enrichment"`
	Cache      CacheConfig      `koanf:"cache"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// DatasetConfig points at the precomputed dataset files.
//
// Environment Variables:
//   - CATALOG_PATH: item catalog CSV (default: anime_dataset.csv)
//   - SIMILARITY_PATH: NumPy similarity matrix (default: similarity_score.npy)
//   - POPULAR_PATH: popularity list CSV (default: popular_anime.csv)
//   - DATASET_NAME_COLUMN: column holding canonical names (default: name)
type DatasetConfig struct {
	CatalogPath string `koanf:"catalog_path"`
	MatrixPath  string `koanf:"matrix_path"`
	PopularPath string `koanf:"popular_path"`
	NameColumn  string `koanf:"name_column"`
}

// RecommendConfig holds ranking and orchestration settings.
type RecommendConfig struct {
	// TopK is the number of similar titles returned per query.
	TopK int `koanf:"top_k"`

	// MatchCutoff is the minimum fuzzy ratio for accepting a title match.
	MatchCutoff float64 `koanf:"match_cutoff"`

	// PopularLimit is the number of entries in the popular panel.
	PopularLimit int `koanf:"popular_limit"`

	// EnrichConcurrency bounds parallel enrichment calls per request. 1 means sequential.
	EnrichConcurrency int `koanf:"enrich_concurrency"`

	// EnrichTimeout bounds each enrichment call.
	EnrichTimeout time.Duration `koanf:"enrich_timeout"`

	// KeepUnenriched keeps ranked titles whose enrichment failed, without metadata.
	// Default false: such titles are dropped from the result list.
	KeepUnenriched bool `koanf:"keep_unenriched"`
}

// EnrichmentConfig holds the AniList gateway settings.
type EnrichmentConfig struct {
	Enabled           bool          `koanf:"enabled"`
	Endpoint          string        `koanf:"endpoint"`
	Timeout           time.Duration `koanf:"timeout"`
	UserAgent         string        `koanf:"user_agent"`
	RequestsPerSecond float64       `koanf:"requests_per_second"` // 0 disables pacing
	Burst             int           `koanf:"burst"`
	WarmupInterval    time.Duration `koanf:"warmup_interval"` // 0 disables the popular panel warmup

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the circuit breaker around the enrichment endpoint.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"` // probes allowed while half-open
	Interval     time.Duration `koanf:"interval"`     // closed-state count reset window
	Timeout      time.Duration `koanf:"timeout"`      // open -> half-open delay
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// CacheConfig holds enrichment cache settings.
type CacheConfig struct {
	// Backend is "memory", "badger" or "none".
	Backend  string        `koanf:"backend"`
	Path     string        `koanf:"path"` // badger directory
	Capacity int           `koanf:"capacity"`
	TTL      time.Duration `koanf:"ttl"`
}

// SecurityConfig holds browser-facing HTTP settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ToLoggingConfig converts to the logging package configuration.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
