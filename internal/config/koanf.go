// Animerec - Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/animerec/config.yaml",
	"/etc/animerec/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultAniListEndpoint is the public AniList GraphQL endpoint.
const DefaultAniListEndpoint = "https://graphql.anilist.co"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Dataset: DatasetConfig{
			CatalogPath: "anime_dataset.csv",
			MatrixPath:  "similarity_score.npy",
			PopularPath: "popular_anime.csv",
			NameColumn:  "name",
		},
		Recommend: RecommendConfig{
			TopK:              5,
			MatchCutoff:       0.6,
			PopularLimit:      10,
			EnrichConcurrency: 5,
			EnrichTimeout:     5 * time.Second,
			KeepUnenriched:    false,
		},
		Enrichment: EnrichmentConfig{
			Enabled:   true,
			Endpoint:  DefaultAniListEndpoint,
			Timeout:   5 * time.Second,
			UserAgent: "animerec/1.0",
			// AniList allows 90 requests per minute.
			RequestsPerSecond: 1.5,
			Burst:             10,
			WarmupInterval:    30 * time.Minute,
			Breaker: BreakerConfig{
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      2 * time.Minute,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Cache: CacheConfig{
			Backend:  "memory",
			Path:     "/data/enrich-cache",
			Capacity: 2048,
			TTL:      24 * time.Hour,
		},
		Security: SecurityConfig{
			CORSOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Default returns the built-in defaults without reading files or the environment.
func Default() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration using Koanf with layered sources.
//
// Configuration is loaded in this order (later sources override earlier):
//  1. Defaults
//  2. Config file: optional YAML (CONFIG_PATH or DefaultConfigPaths)
//  3. .env file: copied into the process environment if present
//  4. Environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	// CATALOG_PATH -> dataset.catalog_path, RECOMMEND_TOP_K -> recommend.top_k
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated env values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps flat environment variable names to koanf config paths.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Dataset
	"catalog_path":        "dataset.catalog_path",
	"similarity_path":     "dataset.matrix_path",
	"popular_path":        "dataset.popular_path",
	"dataset_name_column": "dataset.name_column",

	// Recommendation
	"recommend_top_k":              "recommend.top_k",
	"recommend_match_cutoff":       "recommend.match_cutoff",
	"recommend_popular_limit":      "recommend.popular_limit",
	"recommend_enrich_concurrency": "recommend.enrich_concurrency",
	"recommend_enrich_timeout":     "recommend.enrich_timeout",
	"recommend_keep_unenriched":    "recommend.keep_unenriched",

	// Enrichment (AniList)
	"enrichment_enabled":         "enrichment.enabled",
	"anilist_endpoint":           "enrichment.endpoint",
	"anilist_timeout":            "enrichment.timeout",
	"anilist_user_agent":         "enrichment.user_agent",
	"anilist_rate_limit":         "enrichment.requests_per_second",
	"anilist_burst":              "enrichment.burst",
	"enrichment_warmup_interval": "enrichment.warmup_interval",
	"breaker_max_requests":       "enrichment.breaker.max_requests",
	"breaker_interval":           "enrichment.breaker.interval",
	"breaker_timeout":            "enrichment.breaker.timeout",
	"breaker_min_requests":       "enrichment.breaker.min_requests",
	"breaker_failure_ratio":      "enrichment.breaker.failure_ratio",

	// Cache
	"enrich_cache_backend":  "cache.backend",
	"enrich_cache_path":     "cache.path",
	"enrich_cache_capacity": "cache.capacity",
	"enrich_cache_ttl":      "cache.ttl",

	// Security
	"cors_origins": "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CATALOG_PATH -> dataset.catalog_path
//   - ANILIST_ENDPOINT -> enrichment.endpoint
//   - ENRICH_CACHE_BACKEND -> cache.backend
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated environment variables never leak into config.
	return ""
}
