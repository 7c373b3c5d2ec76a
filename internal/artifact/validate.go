// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"fmt"
	"math"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/tomtom215/wildmovies/internal/recommend"
)

// columnSet converts group column indices to a bitmap, rejecting indices
// outside [0, cols).
func columnSet(name string, idx []int, cols int) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for _, c := range idx {
		if c < 0 || c >= cols {
			return nil, fmt.Errorf("%w: %s column %d not in [0, %d)", ErrGroupRange, name, c, cols)
		}
		bm.Add(uint32(c))
	}
	return bm, nil
}

// buildGroups validates actor and genre column indices and returns them
// sorted and de-duplicated.
func buildGroups(actor, genre []int, cols int) (recommend.Groups, error) {
	a, err := columnSet("actor", actor, cols)
	if err != nil {
		return recommend.Groups{}, err
	}
	g, err := columnSet("genre", genre, cols)
	if err != nil {
		return recommend.Groups{}, err
	}
	if a.Intersects(g) {
		shared := roaring.And(a, g)
		return recommend.Groups{}, fmt.Errorf("%w: %d columns in both actor and genre groups (first %d)",
			ErrGroupOverlap, shared.GetCardinality(), shared.Minimum())
	}
	return recommend.Groups{Actor: toInts(a), Genre: toInts(g)}, nil
}

// groupsByPrefix assigns columns to groups by name prefix.
func groupsByPrefix(columns []string, actorPrefix, genrePrefix string) (recommend.Groups, error) {
	var actor, genre []int
	for i, name := range columns {
		if actorPrefix != "" && strings.HasPrefix(name, actorPrefix) {
			actor = append(actor, i)
		}
		if genrePrefix != "" && strings.HasPrefix(name, genrePrefix) {
			genre = append(genre, i)
		}
	}
	return buildGroups(actor, genre, len(columns))
}

func toInts(bm *roaring.Bitmap) []int {
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// checkFinite rejects NaN and infinite values in a feature row.
func checkFinite(row int, values []float64) error {
	for c, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: row %d column %d", ErrNonFinite, row, c)
		}
	}
	return nil
}
