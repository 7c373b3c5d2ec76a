// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package metadata

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wildmovies/internal/config"
	"github.com/tomtom215/wildmovies/internal/metrics"
)

// BreakerName labels the metadata API breaker in metrics.
const BreakerName = "metadata-api"

// BreakerProvider wraps a Provider with a circuit breaker. While the circuit
// is open, fetches return unavailable results without calling the wrapped
// provider.
//
// The breaker uses real time for its interval and open timeout.
type BreakerProvider struct {
	next   Provider
	cb     *gobreaker.CircuitBreaker[*Movie]
	name   string
	logger zerolog.Logger
}

// NewProvider returns the Client for cfg, wrapped in a BreakerProvider when
// the breaker is enabled and in a CachingProvider when CacheSize > 0.
//
//nolint:gocritic // hugeParam: cfg passed by value for immutability
func NewProvider(cfg config.MetadataConfig, logger zerolog.Logger) Provider {
	var p Provider = NewClient(cfg, logger)
	if cfg.Breaker.Enabled {
		p = NewBreakerProvider(p, cfg.Breaker, logger)
	}
	if cfg.CacheSize > 0 {
		p = NewCachingProvider(p, cfg.CacheSize, cfg.CacheTTL)
	}
	return p
}

// NewBreakerProvider wraps next. The circuit opens once at least
// MinRequests calls were made in the current interval and the failure ratio
// reaches FailureRatio.
//
//nolint:gocritic // hugeParam: cfg passed by value for immutability
func NewBreakerProvider(next Provider, cfg config.BreakerConfig, logger zerolog.Logger) *BreakerProvider {
	bp := &BreakerProvider{
		next:   next,
		name:   BreakerName,
		logger: logger.With().Str("component", "metadata-breaker").Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(bp.name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(bp.name).Set(0)

	bp.cb = gobreaker.NewCircuitBreaker[*Movie](gobreaker.Settings{
		Name:        bp.name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			trip := ratio >= cfg.FailureRatio
			if trip {
				bp.logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},

		IsSuccessful: isHealthy,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			bp.logger.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return bp
}

// Fetch fetches through the breaker.
func (bp *BreakerProvider) Fetch(ctx context.Context, id string) Result {
	m, err := bp.cb.Execute(func() (*Movie, error) {
		r := bp.next.Fetch(ctx, id)
		return r.Movie, r.Err
	})
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(bp.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(bp.name).Set(0)
		return Result{ID: id, Movie: m}
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(bp.name, "rejected").Inc()
		metrics.MetadataFetchesTotal.WithLabelValues(metrics.ResultRejected).Inc()
		bp.logger.Warn().Err(err).Str("id", id).Msg("[CIRCUIT BREAKER] Request rejected")
		return unavailable(id, err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(bp.name, "failure").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(bp.name).Set(float64(bp.cb.Counts().ConsecutiveFailures))
	return unavailable(id, err)
}

// State returns the current breaker state.
func (bp *BreakerProvider) State() gobreaker.State {
	return bp.cb.State()
}

// isHealthy decides whether an error counts against the breaker. Client
// errors other than 429 and caller cancellation say nothing about the API's
// health.
func isHealthy(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 400 && se.StatusCode < 500 && se.StatusCode != http.StatusTooManyRequests
	}
	return false
}

// stateToFloat converts a breaker state to its metric value.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
