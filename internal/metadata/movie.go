// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package metadata

import (
	"context"
	"errors"
	"fmt"
)

// Display defaults for fields the API leaves empty.
const (
	DefaultTitle = "Unknown Title"
	DefaultPlot  = "No plot available."
)

// ErrUnavailable marks a movie whose metadata could not be fetched.
var ErrUnavailable = errors.New("movie metadata unavailable")

// Movie is the display metadata of one title.
type Movie struct {
	ID        string
	Title     string
	Plot      string
	PosterURL string
	Genres    []string

	// Rating is the aggregate rating, nil when the title has none.
	Rating *float64
}

// Result is the outcome of one fetch. Exactly one of Movie and Err is set.
type Result struct {
	ID    string
	Movie *Movie
	Err   error
}

// Available reports whether the movie was fetched.
func (r Result) Available() bool {
	return r.Movie != nil
}

// Provider fetches movie metadata by identifier.
type Provider interface {
	Fetch(ctx context.Context, id string) Result
}

// StatusError is a non-200 API response. It matches ErrUnavailable.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("metadata API returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnavailable
}

// unavailable builds a failed Result. err is wrapped so that it matches
// ErrUnavailable.
func unavailable(id string, err error) Result {
	if !errors.Is(err, ErrUnavailable) {
		err = fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return Result{ID: id, Err: err}
}
