// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

/*
Package config provides centralized configuration management for WildMovies.

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $WILDMOVIES_CONFIG, ./config.yaml, ./config.yml,
    /etc/wildmovies/config.yaml
 3. Optional .env file in the working directory (never overrides variables
    already set in the process environment)
 4. Environment variables listed below

Unlisted environment variables are ignored.

# Environment Variables

Artifacts (ArtifactsConfig):
  - ARTIFACTS_SOURCE: local, s3 or minio (default: local)
  - ARTIFACTS_DIR: directory for the local source (default: ./artifacts)
  - ARTIFACTS_BUCKET, ARTIFACTS_PREFIX: object storage location
  - ARTIFACTS_REGION: AWS region for s3 (default: AWS SDK resolution)
  - ARTIFACTS_ENDPOINT: host:port of the MinIO server
  - ARTIFACTS_ACCESS_KEY, ARTIFACTS_SECRET_KEY, ARTIFACTS_USE_SSL: MinIO credentials
  - ARTIFACTS_FORMAT: bundle or tabular (default: bundle)
  - ARTIFACTS_BUNDLE: bundle object name (default: nn_model_light.json)
  - ARTIFACTS_DATASET: tabular dataset name (default: df_concat.parquet)
  - ARTIFACTS_FEATURE_COLUMNS: feature list name (default: feature_columns.csv)
  - ARTIFACTS_SCALER: scaler object name, empty for none (default: scaler.json)
  - ARTIFACTS_METRIC: distance metric for tabular datasets (default: euclidean)
  - ARTIFACTS_LOAD_TIMEOUT: artifact load deadline (default: 2m)

Recommendations and feed:
  - RECOMMEND_COUNT: similar titles shown per search (default: 3)
  - FEED_SIZE: titles in the default feed (default: 3)
  - FEED_MIN_YEAR: minimum release year, 0 disables the filter (default: 2018)
  - FEED_SEED: random seed, 0 seeds from the clock (default: 0)

Metadata provider (MetadataConfig):
  - METADATA_BASE_URL: API base URL (default: https://api.imdbapi.dev)
  - METADATA_API_KEY: optional bearer token
  - METADATA_TIMEOUT: per-request timeout (default: 10s)
  - METADATA_RATE_LIMIT, METADATA_RATE_BURST: outbound request rate (default: 5/s, burst 5)
  - METADATA_MAX_RETRIES: retries on HTTP 429 (default: 3)
  - METADATA_CONCURRENCY: parallel card fetches (default: 4)
  - METADATA_BREAKER_ENABLED: wrap the client in a circuit breaker (default: true)

Observability:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER: see internal/logging
  - METRICS_TEXTFILE: write Prometheus metrics to this file on exit
*/
package config
