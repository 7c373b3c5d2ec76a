// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package metadata

import (
	"context"
	"time"

	"github.com/tomtom215/wildmovies/internal/cache"
	"github.com/tomtom215/wildmovies/internal/metrics"
)

// CachingProvider remembers fetched movies. Unavailable results are never
// cached, so a failed card is retried on the next page.
type CachingProvider struct {
	next   Provider
	movies *cache.LRU[*Movie]
}

// NewCachingProvider wraps next with an LRU of size entries, each kept for ttl.
func NewCachingProvider(next Provider, size int, ttl time.Duration) *CachingProvider {
	return &CachingProvider{
		next:   next,
		movies: cache.NewLRU[*Movie](size, ttl),
	}
}

// Fetch returns the cached movie for id or fetches it.
func (cp *CachingProvider) Fetch(ctx context.Context, id string) Result {
	if m, ok := cp.movies.Get(id); ok {
		metrics.RecordMetadataCacheLookup(true)
		return Result{ID: id, Movie: m}
	}
	metrics.RecordMetadataCacheLookup(false)

	res := cp.next.Fetch(ctx, id)
	if res.Available() {
		cp.movies.Add(id, res.Movie)
	}
	return res
}
