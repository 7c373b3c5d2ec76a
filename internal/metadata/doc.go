// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

/*
Package metadata fetches display metadata (title, plot, poster, genres,
rating) for catalog identifiers from the remote movie API.

Fetches never fail the caller. Every lookup produces a Result; a Result
without a Movie carries the reason the movie is unavailable, and the page
renders an "unavailable" status in place of that card.

Resilience:
  - Outbound requests are paced by a token bucket (golang.org/x/time/rate)
  - HTTP 429 is retried with exponential backoff, honoring Retry-After
  - BreakerProvider opens a gobreaker circuit when the API keeps failing,
    and rejected calls come back as unavailable without touching the network
  - CachingProvider keeps fetched movies in an LRU so repeated cards are free
  - FetchAll fetches a page of cards concurrently with a bounded worker count

Example:

	provider := metadata.NewProvider(cfg.Metadata, logger)
	cards := metadata.FetchAll(ctx, provider, ids, cfg.Metadata.Concurrency)
	for _, c := range cards {
	    if !c.Available() {
	        fmt.Println(c.ID, "unavailable")
	        continue
	    }
	    fmt.Println(c.Movie.Title)
	}
*/
package metadata
