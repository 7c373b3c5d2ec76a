// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package knn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k < 1.
	ErrInvalidK = errors.New("k must be at least 1")

	// ErrEmptyIndex is returned when building an index without rows.
	ErrEmptyIndex = errors.New("index has no rows")

	// ErrUnknownMetric is returned for an unsupported metric name or value.
	ErrUnknownMetric = errors.New("unknown distance metric")

	// ErrInvalidParameter is returned for an out-of-range metric parameter.
	ErrInvalidParameter = errors.New("invalid metric parameter")
)

// ErrDimensionMismatch is returned when a query has the wrong length.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
