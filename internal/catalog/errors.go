// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package catalog

import "errors"

var (
	// ErrNotFound is returned by Resolve when no title matches.
	ErrNotFound = errors.New("title not found in catalog")

	// ErrLengthMismatch is returned when parallel identifier, title and year
	// sequences differ in length.
	ErrLengthMismatch = errors.New("catalog sequences differ in length")

	// ErrMissingColumn is returned when a tabular source lacks a required column.
	ErrMissingColumn = errors.New("required catalog column missing")

	// ErrDuplicateID is returned when an identifier appears on more than one row.
	ErrDuplicateID = errors.New("duplicate catalog identifier")

	// ErrEmptyID is returned when a row has a blank identifier.
	ErrEmptyID = errors.New("empty catalog identifier")
)
