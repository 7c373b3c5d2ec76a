// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package catalog

import "strings"

// Record is one catalog entry. ID is the metadata provider's identifier.
type Record struct {
	ID    string
	Title string

	// Year is nil when the release year is unknown.
	Year *int
}

// HasYear reports whether the release year is known.
func (r Record) HasYear() bool {
	return r.Year != nil
}

// ReleasedSince reports whether the record has a known year >= minYear.
func (r Record) ReleasedSince(minYear int) bool {
	return r.Year != nil && *r.Year >= minYear
}

// NormalizeTitle trims and lower-cases a title for lookup.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
