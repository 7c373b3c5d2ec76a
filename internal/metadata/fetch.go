// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package metadata

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchAll fetches every id with at most limit fetches in flight. Results
// are in ids order. One failed fetch never affects the others.
func FetchAll(ctx context.Context, p Provider, ids []string, limit int) []Result {
	results := make([]Result, len(ids))
	if len(ids) == 0 {
		return results
	}
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, id := range ids {
		g.Go(func() error {
			results[i] = p.Fetch(ctx, id)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return results
}
