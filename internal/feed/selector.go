// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

// Package feed picks the titles shown before any search has been made.
package feed

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wildmovies/internal/catalog"
	"github.com/tomtom215/wildmovies/internal/metrics"
)

// Defaults for the "now showing" feed.
const (
	DefaultSize    = 3
	DefaultMinYear = 2018
)

// Selector samples catalog identifiers uniformly without replacement.
// It is safe for concurrent use.
type Selector struct {
	records []catalog.Record
	logger  zerolog.Logger

	// Random source (protected by rngMu for concurrent access)
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewSelector creates a Selector over records. A zero seed seeds from the clock.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSelector(records []catalog.Record, seed int64, logger zerolog.Logger) *Selector {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	recs := make([]catalog.Record, len(records))
	copy(recs, records)

	return &Selector{
		records: recs,
		logger:  logger.With().Str("component", "feed").Logger(),
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for feed shuffling
	}
}

// Eligible returns the distinct identifiers passing the year filter, in
// catalog order. A nil minYear disables the filter; otherwise records
// without a known year are excluded.
func (s *Selector) Eligible(minYear *int) []string {
	seen := make(map[string]struct{}, len(s.records))
	out := make([]string, 0, len(s.records))
	for _, r := range s.records {
		if minYear != nil && !r.ReleasedSince(*minYear) {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r.ID)
	}
	return out
}

// Sample returns up to n distinct identifiers drawn uniformly at random from
// the eligible set. When fewer than n are eligible, all of them are returned
// in random order.
func (s *Selector) Sample(n int, minYear *int) []string {
	if n < 1 {
		return nil
	}

	pool := s.Eligible(minYear)
	metrics.RecordFeedSample(len(pool))

	if len(pool) < n {
		s.logger.Debug().
			Int("requested", n).
			Int("eligible", len(pool)).
			Msg("feed has fewer eligible titles than requested")
		n = len(pool)
	}

	// Partial Fisher-Yates: the first n slots end up a uniform sample.
	s.rngMu.Lock()
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	s.rngMu.Unlock()

	return pool[:n]
}
