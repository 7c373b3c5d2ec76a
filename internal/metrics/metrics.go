// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

// Package metrics defines the Prometheus collectors for WildMovies.
//
// Collectors are registered on the default registry at package init. The
// session renderer has no listener, so metrics are exported by writing the
// default registry to a node_exporter textfile (see WriteTextfile).
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metadata fetch results.
const (
	ResultSuccess     = "success"
	ResultUnavailable = "unavailable"
	ResultRejected    = "rejected"
)

var (
	// Search Metrics
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of title searches by outcome",
		},
		[]string{"outcome"}, // "found", "not_found", "error"
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_duration_seconds",
			Help:    "Title resolution plus recommendation latency in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Nearest-neighbor recommendation latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	RecommendationsReturned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_returned_total",
			Help: "Total number of similar titles returned",
		},
	)

	// Default Feed Metrics
	FeedSamplesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_samples_total",
			Help: "Total number of default feed samples drawn",
		},
	)

	FeedEligibleItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_eligible_items",
			Help: "Number of distinct titles passing the feed year filter at the last sample",
		},
	)

	// Metadata Provider Metrics
	MetadataFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_fetches_total",
			Help: "Total number of metadata fetches by result",
		},
		[]string{"result"}, // "success", "unavailable", "rejected"
	)

	MetadataFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metadata_fetch_duration_seconds",
			Help:    "Metadata API fetch latency in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	MetadataRateLimitRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "metadata_rate_limit_retries_total",
			Help: "Total number of retries after HTTP 429 from the metadata API",
		},
	)

	MetadataCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_cache_lookups_total",
			Help: "Total number of metadata cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Artifact Metrics
	ArtifactLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "artifact_load_duration_seconds",
			Help:    "Startup artifact load duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"format"},
	)

	ArtifactLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artifact_load_errors_total",
			Help: "Total number of artifact load failures by artifact",
		},
		[]string{"artifact"},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of titles in the loaded catalog",
		},
	)

	CatalogTitleCollisions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_title_collisions",
			Help: "Number of titles shadowed by an earlier title with the same normalized form",
		},
	)
)

// RecordSearch records a search outcome and its latency.
func RecordSearch(outcome string, duration time.Duration) {
	SearchesTotal.WithLabelValues(outcome).Inc()
	SearchDuration.Observe(duration.Seconds())
}

// RecordRecommendation records one recommendation query.
func RecordRecommendation(duration time.Duration, returned int) {
	RecommendDuration.Observe(duration.Seconds())
	RecommendationsReturned.Add(float64(returned))
}

// RecordFeedSample records one default feed draw.
func RecordFeedSample(eligible int) {
	FeedSamplesTotal.Inc()
	FeedEligibleItems.Set(float64(eligible))
}

// RecordMetadataFetch records a metadata fetch result and its latency.
func RecordMetadataFetch(result string, duration time.Duration) {
	MetadataFetchesTotal.WithLabelValues(result).Inc()
	MetadataFetchDuration.Observe(duration.Seconds())
}

// RecordMetadataRetry records a retry after HTTP 429.
func RecordMetadataRetry() {
	MetadataRateLimitRetries.Inc()
}

// RecordMetadataCacheLookup records a metadata cache hit or miss.
func RecordMetadataCacheLookup(hit bool) {
	if hit {
		MetadataCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	MetadataCacheLookups.WithLabelValues("miss").Inc()
}

// RecordArtifactLoad records a completed artifact load and the catalog it produced.
func RecordArtifactLoad(format string, duration time.Duration, items, collisions int) {
	ArtifactLoadDuration.WithLabelValues(format).Observe(duration.Seconds())
	CatalogItems.Set(float64(items))
	CatalogTitleCollisions.Set(float64(collisions))
}

// RecordArtifactLoadError records a failed artifact load.
func RecordArtifactLoadError(artifact string) {
	if artifact == "" {
		artifact = "unknown"
	}
	ArtifactLoadErrors.WithLabelValues(artifact).Inc()
}

// WriteTextfile writes every collector of the default registry to path in the
// Prometheus text format. The file is written atomically.
func WriteTextfile(path string) error {
	return writeTextfile(path, prometheus.DefaultGatherer)
}

func writeTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return errors.New("metrics textfile path is empty")
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
