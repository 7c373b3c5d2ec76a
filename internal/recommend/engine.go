// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Recommender returns the catalog titles nearest to a given title.
// It is safe for concurrent use.
type Recommender struct {
	catalog Catalog
	raw     *mat.Dense
	scaler  *Scaler
	index   Searcher
	weights Weights

	// colWeights has one multiplier per feature column.
	colWeights []float64

	logger zerolog.Logger
}

// New creates a Recommender over loaded artifacts.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, logger zerolog.Logger) (*Recommender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	_, cols := cfg.Features.Raw.Dims()
	return &Recommender{
		catalog:    cfg.Catalog,
		raw:        cfg.Features.Raw,
		scaler:     cfg.Scaler,
		index:      cfg.Index,
		weights:    cfg.Weights,
		colWeights: cfg.Features.Groups.columnWeights(cols, cfg.Weights),
		logger:     logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Weights returns the group weights in use.
func (r *Recommender) Weights() Weights {
	return r.weights
}

// Scaled reports whether query vectors are standardized before weighting.
func (r *Recommender) Scaled() bool {
	return r.scaler != nil
}

// Recommend returns up to n identifiers most similar to id, nearest first.
// The result never contains id and has min(n, catalog size - 1) entries.
func (r *Recommender) Recommend(ctx context.Context, id string, n int) ([]string, error) {
	start := time.Now()

	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	row, ok := r.catalog.Row(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIdentifier, id)
	}

	neighbors, err := r.index.Search(ctx, r.Query(row), n+1)
	if err != nil {
		return nil, fmt.Errorf("neighbor search for %q: %w", id, err)
	}

	out := make([]string, 0, n)
	for _, nb := range neighbors {
		candidate := r.catalog.ID(nb.Row)
		if candidate == id {
			continue
		}
		out = append(out, candidate)
		if len(out) == n {
			break
		}
	}

	r.logger.Debug().
		Str("id", id).
		Int("requested", n).
		Int("returned", len(out)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return out, nil
}

// Query returns the weighted query vector for row. The result is a fresh
// slice; loaded state is never modified.
func (r *Recommender) Query(row int) []float64 {
	q := mat.Row(nil, row, r.raw)
	if r.scaler != nil {
		r.scaler.TransformTo(q, q)
	}
	floats.Mul(q, r.colWeights)
	return q
}
