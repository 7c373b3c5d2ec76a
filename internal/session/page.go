// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package session

import "github.com/tomtom215/wildmovies/internal/metadata"

// Status is the outcome of a title search.
type Status int

const (
	StatusNotFound Status = iota
	StatusFound
)

func (s Status) String() string {
	if s == StatusFound {
		return "found"
	}
	return "not_found"
}

// SearchResult holds identifiers only.
type SearchResult struct {
	Query          string
	Status         Status
	SearchedID     string
	RecommendedIDs []string
}

// SearchPage is a rendered search: the searched movie's card and, when that
// card is available, the recommendation cards.
type SearchPage struct {
	Search SearchResult

	// Searched is nil when the title was not found.
	Searched *metadata.Result

	Recommendations []metadata.Result
}

// FeedPage is the "now showing" page.
type FeedPage struct {
	Cards []metadata.Result
}
