// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package config

import "time"

// Config holds all application configuration.
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Recommend RecommendConfig `koanf:"recommend"`
	Feed      FeedConfig      `koanf:"feed"`
	Metadata  MetadataConfig  `koanf:"metadata"`
	Logging   LoggingConfig   `koanf:"logging"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// Artifact source kinds.
const (
	SourceLocal = "local"
	SourceS3    = "s3"
	SourceMinIO = "minio"
)

// Artifact formats.
const (
	// FormatBundle is a single JSON document holding ids, titles, feature
	// columns, group membership, fitted neighbor rows and an optional scaler.
	FormatBundle = "bundle"

	// FormatTabular is a parquet or csv dataset plus a feature column list
	// and an optional scaler document.
	FormatTabular = "tabular"
)

// ArtifactsConfig locates the precomputed recommendation artifacts.
type ArtifactsConfig struct {
	// Source selects the blob store: local, s3 or minio.
	Source string `koanf:"source" validate:"required,oneof=local s3 minio"`

	// Dir is the artifact directory for the local source.
	Dir string `koanf:"dir"`

	// Bucket and Prefix locate artifacts in object storage.
	Bucket string `koanf:"bucket"`
	Prefix string `koanf:"prefix"`

	// Region overrides the AWS region for the s3 source.
	Region string `koanf:"region"`

	// Endpoint is the MinIO host:port.
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	UseSSL    bool   `koanf:"use_ssl"`

	// Format is bundle or tabular.
	Format string `koanf:"format" validate:"required,oneof=bundle tabular"`

	// Bundle is the bundle object name. A .zst or .lz4 suffix selects decompression.
	Bundle string `koanf:"bundle" validate:"blobname"`

	// Dataset is the tabular dataset object name (.parquet or .csv, optionally compressed).
	Dataset string `koanf:"dataset" validate:"blobname"`

	// FeatureColumns names the csv listing the dataset's feature columns.
	FeatureColumns string `koanf:"feature_columns" validate:"blobname"`

	// Scaler names the fitted scaler document. Empty disables scaling.
	Scaler string `koanf:"scaler" validate:"blobname"`

	// Tabular column names.
	IDColumn    string `koanf:"id_column" validate:"required"`
	TitleColumn string `koanf:"title_column" validate:"required"`
	YearColumn  string `koanf:"year_column"`

	// ActorPrefix and GenrePrefix assign tabular feature columns to groups.
	ActorPrefix string `koanf:"actor_prefix"`
	GenrePrefix string `koanf:"genre_prefix"`

	// Metric is the neighbor distance metric for tabular datasets.
	// Bundles carry their own metric.
	Metric string `koanf:"metric" validate:"oneof=euclidean manhattan cosine minkowski"`

	// MinkowskiP is the power parameter when Metric is minkowski.
	MinkowskiP float64 `koanf:"minkowski_p" validate:"gte=1"`

	// LoadTimeout bounds the whole startup load.
	LoadTimeout time.Duration `koanf:"load_timeout" validate:"gt=0"`
}

// RecommendConfig controls the similar-titles section of a search.
type RecommendConfig struct {
	// Count is the number of similar titles returned per search.
	Count int `koanf:"count" validate:"min=1,max=50"`
}

// FeedConfig controls the default "now showing" feed.
type FeedConfig struct {
	// Size is the number of titles sampled.
	Size int `koanf:"size" validate:"min=1,max=50"`

	// MinYear keeps only titles released in or after this year. 0 disables the filter.
	MinYear int `koanf:"min_year" validate:"gte=0,lte=9999"`

	// Seed makes sampling deterministic. 0 seeds from the clock.
	Seed int64 `koanf:"seed"`
}

// MetadataConfig configures the remote movie metadata API.
type MetadataConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,http_url"`

	// APIKey is sent as a bearer token when set.
	APIKey string `koanf:"api_key"`

	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// RequestsPerSecond and Burst bound the outbound request rate.
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gt=0"`
	Burst             int     `koanf:"burst" validate:"min=1"`

	// MaxRetries is the number of retries on HTTP 429.
	MaxRetries int           `koanf:"max_retries" validate:"gte=0,lte=10"`
	RetryDelay time.Duration `koanf:"retry_delay" validate:"gt=0"`

	// MaxRetryDelay caps a single backoff wait. A Retry-After asking for
	// longer fails the fetch instead of waiting.
	MaxRetryDelay time.Duration `koanf:"max_retry_delay" validate:"gt=0"`

	// Concurrency caps parallel card fetches.
	Concurrency int `koanf:"concurrency" validate:"min=1,max=32"`

	// CacheSize is the number of fetched movies kept in memory. 0 disables caching.
	CacheSize int           `koanf:"cache_size" validate:"gte=0"`
	CacheTTL  time.Duration `koanf:"cache_ttl" validate:"gte=0"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker around the metadata API.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of probe requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests" validate:"min=1"`

	// Interval resets failure counts while closed.
	Interval time.Duration `koanf:"interval" validate:"gte=0"`

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// MinRequests and FailureRatio decide when to open.
	MinRequests  uint32  `koanf:"min_requests" validate:"min=1"`
	FailureRatio float64 `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`

	// Format is json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// MetricsConfig controls Prometheus metric export.
type MetricsConfig struct {
	// TextfilePath receives the metrics in text exposition format when the
	// session ends (node_exporter textfile collector). Empty disables export.
	TextfilePath string `koanf:"textfile_path"`
}
