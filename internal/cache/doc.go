// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

/*
Package cache provides a thread-safe, fixed-capacity LRU cache with TTL
expiration.

The session uses it to keep fetched movie metadata, so a title that shows up
in the feed and again in a search, or in two searches, is fetched once.

# Usage Example

	c := cache.NewLRU[*metadata.Movie](256, 30*time.Minute)
	c.Add("tt0133093", movie)
	if m, ok := c.Get("tt0133093"); ok {
	    fmt.Println(m.Title)
	}

Expired entries are dropped lazily on access; CleanupExpired removes them
eagerly.
*/
package cache
