// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package recommend

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Groups lists the feature column indices belonging to each weighted group.
// Columns in neither group are never weighted.
type Groups struct {
	Actor []int
	Genre []int
}

func (g Groups) validate(cols int) error {
	seen := make(map[int]string, len(g.Actor)+len(g.Genre))
	check := func(name string, idx []int) error {
		for _, c := range idx {
			if c < 0 || c >= cols {
				return fmt.Errorf("%w: %s column %d outside [0, %d)", ErrShapeMismatch, name, c, cols)
			}
			if other, dup := seen[c]; dup {
				return fmt.Errorf("%w: column %d in both %s and %s groups", ErrShapeMismatch, c, other, name)
			}
			seen[c] = name
		}
		return nil
	}
	if err := check("actor", g.Actor); err != nil {
		return err
	}
	return check("genre", g.Genre)
}

// Features is the raw feature matrix, one row per catalog record in catalog
// row order.
type Features struct {
	Columns []string
	Raw     *mat.Dense
	Groups  Groups
}

// columnWeights expands group weights to one multiplier per column.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (g Groups) columnWeights(cols int, w Weights) []float64 {
	out := make([]float64, cols)
	for i := range out {
		out[i] = 1
	}
	for _, c := range g.Actor {
		out[c] = w.Actor
	}
	for _, c := range g.Genre {
		out[c] = w.Genre
	}
	return out
}
