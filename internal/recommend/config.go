// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/wildmovies/internal/knn"
)

// Default group weights.
const (
	// DefaultActorWeight biases recommendations toward cast overlap.
	DefaultActorWeight = 2.5

	// DefaultGenreWeight leaves genre columns unchanged.
	DefaultGenreWeight = 1.0

	// DefaultCount is the number of similar titles shown per search.
	DefaultCount = 3
)

// Weights holds the per-group multipliers applied to a query vector.
type Weights struct {
	Actor float64
	Genre float64
}

// DefaultWeights returns the production weights.
func DefaultWeights() Weights {
	return Weights{Actor: DefaultActorWeight, Genre: DefaultGenreWeight}
}

// Validate checks that both weights are finite and positive.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Validate() error {
	if !(w.Actor > 0) || math.IsInf(w.Actor, 0) {
		return fmt.Errorf("actor weight must be positive and finite, got %v", w.Actor)
	}
	if !(w.Genre > 0) || math.IsInf(w.Genre, 0) {
		return fmt.Errorf("genre weight must be positive and finite, got %v", w.Genre)
	}
	return nil
}

// Catalog is the row lookup the Recommender needs from the catalog index.
type Catalog interface {
	Row(id string) (int, bool)
	ID(row int) string
	Len() int
}

// Searcher is a k-nearest-neighbor index over the fitted rows.
type Searcher interface {
	Search(ctx context.Context, q []float64, k int) ([]knn.Neighbor, error)
	Len() int
	Dims() int
}

// Config wires the loaded artifacts into a Recommender.
type Config struct {
	Catalog  Catalog
	Features *Features

	// Scaler is optional. When nil, raw vectors are queried as stored.
	Scaler *Scaler

	Index   Searcher
	Weights Weights
}

// Validate checks that all inputs are present and agree in shape.
func (c *Config) Validate() error {
	if c.Catalog == nil {
		return errors.New("catalog is required")
	}
	if c.Features == nil || c.Features.Raw == nil {
		return errors.New("features are required")
	}
	if c.Index == nil {
		return errors.New("neighbor index is required")
	}
	if err := c.Weights.Validate(); err != nil {
		return err
	}

	rows, cols := c.Features.Raw.Dims()
	if rows != c.Catalog.Len() {
		return fmt.Errorf("%w: %d feature rows, %d catalog rows", ErrShapeMismatch, rows, c.Catalog.Len())
	}
	if rows != c.Index.Len() {
		return fmt.Errorf("%w: %d feature rows, %d index rows", ErrShapeMismatch, rows, c.Index.Len())
	}
	if cols != c.Index.Dims() {
		return fmt.Errorf("%w: %d feature columns, index dimension %d", ErrShapeMismatch, cols, c.Index.Dims())
	}
	if len(c.Features.Columns) != cols {
		return fmt.Errorf("%w: %d column names, %d feature columns", ErrShapeMismatch, len(c.Features.Columns), cols)
	}
	if err := c.Features.Groups.validate(cols); err != nil {
		return err
	}
	if c.Scaler != nil && c.Scaler.Dims() != cols {
		return fmt.Errorf("%w: scaler has %d columns, features have %d", ErrShapeMismatch, c.Scaler.Dims(), cols)
	}
	return nil
}
