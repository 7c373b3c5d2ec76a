// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package recommend

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Scaler is a fitted per-column standardization: (v - mean) / scale.
// A zero scale is treated as 1, so constant columns are only centered.
type Scaler struct {
	mean  []float64
	scale []float64
}

// NewScaler builds a Scaler from fitted means and scales.
func NewScaler(mean, scale []float64) (*Scaler, error) {
	if len(mean) == 0 {
		return nil, errors.New("scaler has no columns")
	}
	if len(mean) != len(scale) {
		return nil, fmt.Errorf("%w: %d means, %d scales", ErrShapeMismatch, len(mean), len(scale))
	}

	s := &Scaler{
		mean:  make([]float64, len(mean)),
		scale: make([]float64, len(scale)),
	}
	for i := range mean {
		if math.IsNaN(mean[i]) || math.IsInf(mean[i], 0) {
			return nil, fmt.Errorf("scaler mean %d is not finite", i)
		}
		sc := scale[i]
		if math.IsNaN(sc) || math.IsInf(sc, 0) || sc < 0 {
			return nil, fmt.Errorf("scaler scale %d must be finite and non-negative, got %v", i, sc)
		}
		if sc == 0 {
			sc = 1
		}
		s.mean[i] = mean[i]
		s.scale[i] = sc
	}
	return s, nil
}

// Dims returns the number of columns the scaler was fitted on.
func (s *Scaler) Dims() int {
	return len(s.mean)
}

// TransformTo writes the scaled v into dst. dst and v must have Dims elements
// and may be the same slice.
func (s *Scaler) TransformTo(dst, v []float64) {
	floats.SubTo(dst, v, s.mean)
	floats.Div(dst, s.scale)
}

// TransformMatrix returns a scaled copy of m.
func (s *Scaler) TransformMatrix(m mat.Matrix) *mat.Dense {
	out := mat.DenseCopyOf(m)
	rows, _ := out.Dims()
	for i := 0; i < rows; i++ {
		row := out.RawRowView(i)
		s.TransformTo(row, row)
	}
	return out
}
