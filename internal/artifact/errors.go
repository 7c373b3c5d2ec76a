// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCatalog is returned when the artifacts contain no titles.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrMisaligned is returned when row-aligned artifacts disagree in length.
	ErrMisaligned = errors.New("artifacts are not row-aligned")

	// ErrGroupRange is returned when a feature group names a column outside the matrix.
	ErrGroupRange = errors.New("feature group column out of range")

	// ErrGroupOverlap is returned when a column belongs to more than one group.
	ErrGroupOverlap = errors.New("feature groups overlap")

	// ErrUnknownColumn is returned when a listed feature column is not in the dataset.
	ErrUnknownColumn = errors.New("feature column not in dataset")

	// ErrNonFinite is returned for NaN or infinite feature values.
	ErrNonFinite = errors.New("feature value is not finite")

	// ErrUnsupportedFormat is returned for an unknown artifact or dataset format.
	ErrUnsupportedFormat = errors.New("unsupported artifact format")
)

// LoadError reports a malformed, missing or misaligned artifact. Any LoadError
// is fatal at startup.
type LoadError struct {
	// Artifact is the blob name of the failing input.
	Artifact string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load artifact %s: %v", e.Artifact, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// loadErr wraps err in a LoadError for artifact unless it already is one.
func loadErr(artifact string, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		return err
	}
	return &LoadError{Artifact: artifact, Err: err}
}
