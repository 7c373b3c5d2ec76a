// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package knn

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Metric is a distance function between two equal-length vectors.
type Metric int

// Supported metrics.
const (
	Euclidean Metric = iota
	Manhattan
	Cosine
	Minkowski
)

// String returns the metric name used in artifacts and configuration.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	case Cosine:
		return "cosine"
	case Minkowski:
		return "minkowski"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric parses a metric name. The empty string selects Euclidean.
// "l2" and "l1" are accepted as aliases.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "euclidean", "l2":
		return Euclidean, nil
	case "manhattan", "cityblock", "l1":
		return Manhattan, nil
	case "cosine":
		return Cosine, nil
	case "minkowski":
		return Minkowski, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// distanceFunc returns the distance function for m. p is only used by Minkowski.
func distanceFunc(m Metric, p float64) (func(a, b []float64) float64, error) {
	switch m {
	case Euclidean:
		return func(a, b []float64) float64 { return floats.Distance(a, b, 2) }, nil
	case Manhattan:
		return func(a, b []float64) float64 { return floats.Distance(a, b, 1) }, nil
	case Cosine:
		return cosineDistance, nil
	case Minkowski:
		if p < 1 || math.IsNaN(p) {
			return nil, fmt.Errorf("%w: minkowski p must be >= 1, got %v", ErrInvalidParameter, p)
		}
		return func(a, b []float64) float64 { return floats.Distance(a, b, p) }, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMetric, m)
	}
}

// cosineDistance is 1 - cos(a, b). A zero vector is at distance 1 from everything.
func cosineDistance(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - floats.Dot(a, b)/(na*nb)
}
