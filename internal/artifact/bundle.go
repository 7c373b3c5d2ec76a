// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/wildmovies/internal/catalog"
	"github.com/tomtom215/wildmovies/internal/knn"
	"github.com/tomtom215/wildmovies/internal/recommend"
)

// Bundle is the single-document artifact format. All slices indexed by row
// (IDs, Titles, Years, Neighbors.Rows) are aligned.
type Bundle struct {
	IDs    []string `json:"ids"`
	Titles []string `json:"titles"`

	// Years is optional; null entries mean unknown.
	Years []*int `json:"years,omitempty"`

	FeatureColumns []string `json:"feature_columns"`
	ActorColumns   []int    `json:"actor_columns"`
	GenreColumns   []int    `json:"genre_columns"`

	Neighbors NeighborModel `json:"neighbors"`
	Scaler    *ScalerModel  `json:"scaler,omitempty"`
}

// NeighborModel holds the fitted rows of the neighbor index.
type NeighborModel struct {
	Metric string      `json:"metric"`
	P      float64     `json:"p,omitempty"`
	Rows   [][]float64 `json:"rows"`
}

// ScalerModel is a fitted per-column standardization.
type ScalerModel struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// components are the validated pieces every format produces.
type components struct {
	catalog  *catalog.Index
	features *recommend.Features
	scaler   *recommend.Scaler
	index    *knn.Index
}

// DecodeBundle reads a Bundle document.
func DecodeBundle(r io.Reader) (*Bundle, error) {
	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	return &b, nil
}

// build validates the bundle and assembles the catalog, features, scaler and index.
func (b *Bundle) build() (*components, error) {
	if len(b.IDs) == 0 {
		return nil, ErrEmptyCatalog
	}

	years := b.Years
	if len(years) == 0 {
		years = nil
	}
	cat, err := catalog.New(b.IDs, b.Titles, years)
	if err != nil {
		return nil, err
	}

	rows := len(b.Neighbors.Rows)
	cols := len(b.FeatureColumns)
	if rows != len(b.IDs) {
		return nil, fmt.Errorf("%w: %d neighbor rows, %d identifiers", ErrMisaligned, rows, len(b.IDs))
	}
	if cols == 0 {
		return nil, fmt.Errorf("%w: no feature columns", ErrMisaligned)
	}

	data := make([]float64, 0, rows*cols)
	for i, r := range b.Neighbors.Rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrMisaligned, i, len(r), cols)
		}
		if err := checkFinite(i, r); err != nil {
			return nil, err
		}
		data = append(data, r...)
	}
	raw := mat.NewDense(rows, cols, data)

	groups, err := buildGroups(b.ActorColumns, b.GenreColumns, cols)
	if err != nil {
		return nil, err
	}

	metric, err := knn.ParseMetric(b.Neighbors.Metric)
	if err != nil {
		return nil, err
	}
	p := b.Neighbors.P
	if p == 0 {
		p = 2
	}

	var scaler *recommend.Scaler
	fitted := mat.Matrix(raw)
	if b.Scaler != nil {
		if len(b.Scaler.Mean) != cols {
			return nil, fmt.Errorf("%w: scaler has %d columns, want %d", ErrMisaligned, len(b.Scaler.Mean), cols)
		}
		scaler, err = recommend.NewScaler(b.Scaler.Mean, b.Scaler.Scale)
		if err != nil {
			return nil, err
		}
		fitted = scaler.TransformMatrix(raw)
	}

	idx, err := knn.New(fitted, metric, p)
	if err != nil {
		return nil, err
	}

	return &components{
		catalog:  cat,
		features: &recommend.Features{Columns: b.FeatureColumns, Raw: raw, Groups: groups},
		scaler:   scaler,
		index:    idx,
	}, nil
}
