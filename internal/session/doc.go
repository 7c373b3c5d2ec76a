// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

// Package session implements the interactions of a WildMovies session: a
// title search with similar-title recommendations, and the default "now
// showing" feed. Search and DefaultFeed return identifiers only;
// SearchPage and FeedPage also fetch the display cards.
package session
