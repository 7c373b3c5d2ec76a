// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

// Package catalog holds the static movie catalog: the ordered record list that
// fixes row positions in the feature space, and the title index used to turn
// free-text searches into catalog identifiers.
//
// Titles are normalized by trimming surrounding whitespace and lower-casing.
// Lookups are exact; there is no fuzzy or partial matching. When two records
// normalize to the same title the first one in row order keeps the title and
// later ones are only reachable by identifier.
//
// An Index is immutable after construction and safe for concurrent use.
package catalog
