// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package recommend

import "errors"

var (
	// ErrUnknownIdentifier means the identifier has no row in the feature
	// space. Identifiers resolved from the same catalog never trigger it.
	ErrUnknownIdentifier = errors.New("unknown catalog identifier")

	// ErrInvalidCount is returned when fewer than one recommendation is requested.
	ErrInvalidCount = errors.New("recommendation count must be at least 1")

	// ErrShapeMismatch is returned by New when the catalog, features, scaler
	// or index disagree on rows or columns.
	ErrShapeMismatch = errors.New("recommendation inputs disagree in shape")
)
