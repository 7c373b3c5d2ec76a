// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package config

import (
	"errors"
	"fmt"
	"io/fs"
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
	"/etc/wildmovies/config.yaml",
	"/etc/wildmovies/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "WILDMOVIES_CONFIG"

// DotEnvPath is the optional dotenv file loaded before environment variables.
var DotEnvPath = ".env"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Artifacts: ArtifactsConfig{
			Source:         SourceLocal,
			Dir:            "./artifacts",
			Format:         FormatBundle,
			Bundle:         "nn_model_light.json",
			Dataset:        "df_concat.parquet",
			FeatureColumns: "feature_columns.csv",
			Scaler:         "scaler.json",
			IDColumn:       "ID_film",
			TitleColumn:    "Titre",
			YearColumn:     "Année",
			ActorPrefix:    "actor_",
			GenrePrefix:    "genre_",
			Metric:         "euclidean",
			MinkowskiP:     2,
			LoadTimeout:    2 * time.Minute,
		},
		Recommend: RecommendConfig{
			Count: 3,
		},
		Feed: FeedConfig{
			Size:    3,
			MinYear: 2018,
			Seed:    0,
		},
		Metadata: MetadataConfig{
			BaseURL:           "https://api.imdbapi.dev",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 5,
			Burst:             5,
			MaxRetries:        3,
			RetryDelay:        time.Second,
			MaxRetryDelay:     10 * time.Second,
			Concurrency:       4,
			CacheSize:         256,
			CacheTTL:          30 * time.Minute,
			Breaker: BreakerConfig{
				Enabled:      true,
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      2 * time.Minute,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults
//  2. Optional YAML config file
//  3. Optional .env file
//  4. Environment variables
//
// The returned configuration has passed Validate.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	// ARTIFACTS_BUCKET -> artifacts.bucket, LOG_LEVEL -> logging.level
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
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

// loadDotEnv reads DotEnvPath into the process environment. Variables that are
// already set keep their values. A missing file is not an error.
func loadDotEnv() error {
	if DotEnvPath == "" {
		return nil
	}
	if err := godotenv.Load(DotEnvPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", DotEnvPath, err)
	}
	return nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
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

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	"artifacts_source":          "artifacts.source",
	"artifacts_dir":             "artifacts.dir",
	"artifacts_bucket":          "artifacts.bucket",
	"artifacts_prefix":          "artifacts.prefix",
	"artifacts_region":          "artifacts.region",
	"artifacts_endpoint":        "artifacts.endpoint",
	"artifacts_access_key":      "artifacts.access_key",
	"artifacts_secret_key":      "artifacts.secret_key",
	"artifacts_use_ssl":         "artifacts.use_ssl",
	"artifacts_format":          "artifacts.format",
	"artifacts_bundle":          "artifacts.bundle",
	"artifacts_dataset":         "artifacts.dataset",
	"artifacts_feature_columns": "artifacts.feature_columns",
	"artifacts_scaler":          "artifacts.scaler",
	"artifacts_id_column":       "artifacts.id_column",
	"artifacts_title_column":    "artifacts.title_column",
	"artifacts_year_column":     "artifacts.year_column",
	"artifacts_actor_prefix":    "artifacts.actor_prefix",
	"artifacts_genre_prefix":    "artifacts.genre_prefix",
	"artifacts_metric":          "artifacts.metric",
	"artifacts_minkowski_p":     "artifacts.minkowski_p",
	"artifacts_load_timeout":    "artifacts.load_timeout",

	"recommend_count": "recommend.count",

	"feed_size":     "feed.size",
	"feed_min_year": "feed.min_year",
	"feed_seed":     "feed.seed",

	"metadata_base_url":        "metadata.base_url",
	"metadata_api_key":         "metadata.api_key",
	"metadata_timeout":         "metadata.timeout",
	"metadata_rate_limit":      "metadata.requests_per_second",
	"metadata_rate_burst":      "metadata.burst",
	"metadata_max_retries":     "metadata.max_retries",
	"metadata_retry_delay":     "metadata.retry_delay",
	"metadata_max_retry_delay": "metadata.max_retry_delay",
	"metadata_concurrency":     "metadata.concurrency",
	"metadata_cache_size":      "metadata.cache_size",
	"metadata_cache_ttl":       "metadata.cache_ttl",

	"metadata_breaker_enabled":       "metadata.breaker.enabled",
	"metadata_breaker_max_requests":  "metadata.breaker.max_requests",
	"metadata_breaker_interval":      "metadata.breaker.interval",
	"metadata_breaker_timeout":       "metadata.breaker.timeout",
	"metadata_breaker_min_requests":  "metadata.breaker.min_requests",
	"metadata_breaker_failure_ratio": "metadata.breaker.failure_ratio",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"metrics_textfile": "metrics.textfile_path",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped so unrelated environment
// variables never reach the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
