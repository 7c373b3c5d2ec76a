// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package recommend

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/wildmovies/internal/catalog"
	"github.com/tomtom215/wildmovies/internal/knn"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	if w.Actor != 2.5 {
		t.Errorf("Actor = %v, want 2.5", w.Actor)
	}
	if w.Genre != 1.0 {
		t.Errorf("Genre = %v, want 1.0", w.Genre)
	}
	if err := w.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestWeightsValidate(t *testing.T) {
	tests := []struct {
		name    string
		w       Weights
		wantErr bool
	}{
		{"defaults", DefaultWeights(), false},
		{"unit", Weights{Actor: 1, Genre: 1}, false},
		{"zero actor", Weights{Actor: 0, Genre: 1}, true},
		{"negative genre", Weights{Actor: 1, Genre: -1}, true},
		{"NaN actor", Weights{Actor: math.NaN(), Genre: 1}, true},
		{"infinite genre", Weights{Actor: 1, Genre: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cat, err := catalog.New([]string{"a", "b", "c"}, []string{"A", "B", "C"}, nil)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	raw := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	idx, err := knn.New(raw, knn.Euclidean, 2)
	if err != nil {
		t.Fatalf("knn.New() error = %v", err)
	}
	otherIdx, err := knn.New(mat.NewDense(2, 3, nil), knn.Euclidean, 2)
	if err != nil {
		t.Fatalf("knn.New() error = %v", err)
	}

	validConfig := func() *Config {
		return &Config{
			Catalog: cat,
			Features: &Features{
				Columns: []string{"actor_x", "genre_y", "other"},
				Raw:     raw,
				Groups:  Groups{Actor: []int{0}, Genre: []int{1}},
			},
			Index:   idx,
			Weights: DefaultWeights(),
		}
	}

	tests := []struct {
		name      string
		modify    func(*Config)
		wantShape bool
		wantError bool
	}{
		{name: "valid", modify: func(c *Config) {}},
		{name: "missing catalog", modify: func(c *Config) { c.Catalog = nil }, wantError: true},
		{name: "missing features", modify: func(c *Config) { c.Features = nil }, wantError: true},
		{name: "missing index", modify: func(c *Config) { c.Index = nil }, wantError: true},
		{name: "bad weights", modify: func(c *Config) { c.Weights.Actor = 0 }, wantError: true},
		{
			name:      "index rows differ",
			modify:    func(c *Config) { c.Index = otherIdx },
			wantShape: true, wantError: true,
		},
		{
			name:      "column names differ",
			modify:    func(c *Config) { c.Features.Columns = c.Features.Columns[:2] },
			wantShape: true, wantError: true,
		},
		{
			name:      "group out of range",
			modify:    func(c *Config) { c.Features.Groups.Genre = []int{3} },
			wantShape: true, wantError: true,
		},
		{
			name:      "overlapping groups",
			modify:    func(c *Config) { c.Features.Groups.Genre = []int{0} },
			wantShape: true, wantError: true,
		},
		{
			name: "scaler columns differ",
			modify: func(c *Config) {
				s, _ := NewScaler([]float64{0, 0}, []float64{1, 1})
				c.Scaler = s
			},
			wantShape: true, wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !tt.wantError && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if tt.wantShape && !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("Validate() = %v, want %v", err, ErrShapeMismatch)
			}
		})
	}
}

func TestColumnWeights(t *testing.T) {
	g := Groups{Actor: []int{0, 2}, Genre: []int{3}}
	got := g.columnWeights(5, Weights{Actor: 2.5, Genre: 1.5})
	want := []float64{2.5, 1, 2.5, 1.5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("columnWeights()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
