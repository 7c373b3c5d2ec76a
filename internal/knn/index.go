// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

// Package knn provides an exact nearest-neighbor index over a fixed set of
// dense rows.
//
// Search scans every row and keeps the k best in a bounded max-heap, so
// results are exact for all supported metrics. Ties are broken by row
// position, which makes results deterministic for a given index.
package knn

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// cancelCheckInterval is how many rows are scanned between context checks.
const cancelCheckInterval = 1024

// Index is an immutable exact k-nearest-neighbor index.
type Index struct {
	data     *mat.Dense
	metric   Metric
	p        float64
	distance func(a, b []float64) float64
}

// New builds an index over the rows of data. The matrix is copied. p is the
// Minkowski power and is ignored by other metrics.
func New(data mat.Matrix, metric Metric, p float64) (*Index, error) {
	if data == nil {
		return nil, ErrEmptyIndex
	}
	r, c := data.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyIndex
	}

	dist, err := distanceFunc(metric, p)
	if err != nil {
		return nil, err
	}

	return &Index{
		data:     mat.DenseCopyOf(data),
		metric:   metric,
		p:        p,
		distance: dist,
	}, nil
}

// Len returns the number of rows.
func (x *Index) Len() int {
	r, _ := x.data.Dims()
	return r
}

// Dims returns the vector dimension.
func (x *Index) Dims() int {
	_, c := x.data.Dims()
	return c
}

// Metric returns the index metric.
func (x *Index) Metric() Metric {
	return x.metric
}

// P returns the Minkowski power the index was built with.
func (x *Index) P() float64 {
	return x.p
}

// Vector returns a copy of row i. It panics if i is out of range.
func (x *Index) Vector(i int) []float64 {
	return mat.Row(nil, i, x.data)
}

// Search returns up to k rows nearest to q, nearest first.
func (x *Index) Search(ctx context.Context, q []float64, k int) ([]Neighbor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, ErrInvalidK
	}

	rows, dim := x.data.Dims()
	if len(q) != dim {
		return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(q)}
	}
	for i, v := range q {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("query component %d is NaN", i)
		}
	}

	if k > rows {
		k = rows
	}

	top := newWorstFirst(k)
	for i := 0; i < rows; i++ {
		if i%cancelCheckInterval == 0 && i > 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		top.offer(Neighbor{Row: i, Distance: x.distance(q, x.data.RawRowView(i))})
	}

	return top.drain(), nil
}
