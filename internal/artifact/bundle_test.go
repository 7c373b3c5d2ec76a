// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/tomtom215/wildmovies/internal/catalog"
	"github.com/tomtom215/wildmovies/internal/knn"
)

func TestDecodeBundle(t *testing.T) {
	t.Parallel()

	doc := `{
		"ids": ["tt1", "tt2"],
		"titles": ["One", "Two"],
		"years": [2001, null],
		"feature_columns": ["actor_x", "genre_y"],
		"actor_columns": [0],
		"genre_columns": [1],
		"neighbors": {"metric": "manhattan", "rows": [[1, 0], [0, 1]]},
		"scaler": {"mean": [0.5, 0.5], "scale": [0.5, 0]}
	}`

	b, err := DecodeBundle(bytes.NewReader([]byte(doc)))
	if err != nil {
		t.Fatalf("DecodeBundle() error = %v", err)
	}
	if len(b.IDs) != 2 || b.Years[0] == nil || *b.Years[0] != 2001 || b.Years[1] != nil {
		t.Errorf("DecodeBundle() ids/years = %v/%v", b.IDs, b.Years)
	}
	if b.Scaler == nil || b.Scaler.Scale[1] != 0 {
		t.Errorf("DecodeBundle() scaler = %+v", b.Scaler)
	}

	comp, err := b.build()
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if comp.index.Metric() != knn.Manhattan {
		t.Errorf("index metric = %v, want manhattan", comp.index.Metric())
	}
	if comp.scaler == nil {
		t.Fatal("scaler = nil, want fitted scaler")
	}
	// Index rows are scaled; raw rows are kept as stored.
	if got := comp.index.Vector(0); got[0] != 1 || got[1] != -0.5 {
		t.Errorf("index row 0 = %v, want [1 -0.5]", got)
	}
	if got := comp.features.Raw.At(0, 0); got != 1 {
		t.Errorf("raw[0][0] = %v, want 1", got)
	}

	if _, err := DecodeBundle(bytes.NewReader([]byte(`{"ids": [`))); err == nil {
		t.Error("DecodeBundle(truncated) error = nil, want error")
	}
}

func TestBundleBuild(t *testing.T) {
	t.Parallel()

	comp, err := testBundle().build()
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if comp.catalog.Len() != 5 {
		t.Errorf("catalog.Len() = %d, want 5", comp.catalog.Len())
	}
	if comp.scaler != nil {
		t.Error("scaler != nil for a bundle without scaler")
	}
	if comp.index.Len() != 5 || comp.index.Dims() != 3 {
		t.Errorf("index shape = %dx%d, want 5x3", comp.index.Len(), comp.index.Dims())
	}
	if got := comp.features.Groups.Actor; len(got) != 1 || got[0] != 0 {
		t.Errorf("actor group = %v, want [0]", got)
	}
}

func TestBundleBuildEmptyYears(t *testing.T) {
	t.Parallel()

	doc := `{
		"ids": ["A", "B"],
		"titles": ["Alpha", "Bravo"],
		"years": [],
		"feature_columns": ["actor_a", "genre_x"],
		"actor_columns": [0],
		"genre_columns": [1],
		"neighbors": {"metric": "euclidean", "rows": [[0, 0], [1, 1]]}
	}`
	b, err := DecodeBundle(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeBundle() error = %v", err)
	}

	comp, err := b.build()
	if err != nil {
		t.Fatalf("build() error = %v, want an empty years list to mean no years", err)
	}
	for _, r := range comp.catalog.Records() {
		if r.HasYear() {
			t.Errorf("record %s has year %d, want none", r.ID, *r.Year)
		}
	}
}

func TestBundleBuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Bundle)
		wantErr error
	}{
		{
			name:    "empty",
			modify:  func(b *Bundle) { b.IDs, b.Titles, b.Years, b.Neighbors.Rows = nil, nil, nil, nil },
			wantErr: ErrEmptyCatalog,
		},
		{
			name:    "titles shorter than ids",
			modify:  func(b *Bundle) { b.Titles = b.Titles[:4] },
			wantErr: catalog.ErrLengthMismatch,
		},
		{
			name:    "duplicate id",
			modify:  func(b *Bundle) { b.IDs[4] = "A" },
			wantErr: catalog.ErrDuplicateID,
		},
		{
			name:    "fewer rows than ids",
			modify:  func(b *Bundle) { b.Neighbors.Rows = b.Neighbors.Rows[:4] },
			wantErr: ErrMisaligned,
		},
		{
			name:    "ragged row",
			modify:  func(b *Bundle) { b.Neighbors.Rows[2] = []float64{1, 2} },
			wantErr: ErrMisaligned,
		},
		{
			name:    "no feature columns",
			modify:  func(b *Bundle) { b.FeatureColumns = nil },
			wantErr: ErrMisaligned,
		},
		{
			name:    "NaN value",
			modify:  func(b *Bundle) { b.Neighbors.Rows[1][2] = math.NaN() },
			wantErr: ErrNonFinite,
		},
		{
			name:    "group out of range",
			modify:  func(b *Bundle) { b.GenreColumns = []int{3} },
			wantErr: ErrGroupRange,
		},
		{
			name:    "negative group index",
			modify:  func(b *Bundle) { b.ActorColumns = []int{-1} },
			wantErr: ErrGroupRange,
		},
		{
			name:    "overlapping groups",
			modify:  func(b *Bundle) { b.GenreColumns = []int{0, 1} },
			wantErr: ErrGroupOverlap,
		},
		{
			name:    "unknown metric",
			modify:  func(b *Bundle) { b.Neighbors.Metric = "hamming" },
			wantErr: knn.ErrUnknownMetric,
		},
		{
			name:    "scaler columns",
			modify:  func(b *Bundle) { b.Scaler = &ScalerModel{Mean: []float64{0}, Scale: []float64{1}} },
			wantErr: ErrMisaligned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := testBundle()
			tt.modify(b)
			_, err := b.build()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildGroupsDeduplicates(t *testing.T) {
	t.Parallel()

	g, err := buildGroups([]int{3, 1, 3}, []int{0}, 4)
	if err != nil {
		t.Fatalf("buildGroups() error = %v", err)
	}
	if len(g.Actor) != 2 || g.Actor[0] != 1 || g.Actor[1] != 3 {
		t.Errorf("Actor = %v, want [1 3]", g.Actor)
	}
}

func TestGroupsByPrefix(t *testing.T) {
	t.Parallel()

	cols := []string{"actor_nm1", "genre_Drama", "runtime", "actor_nm2", "genre_Action"}
	g, err := groupsByPrefix(cols, "actor_", "genre_")
	if err != nil {
		t.Fatalf("groupsByPrefix() error = %v", err)
	}
	if len(g.Actor) != 2 || g.Actor[0] != 0 || g.Actor[1] != 3 {
		t.Errorf("Actor = %v, want [0 3]", g.Actor)
	}
	if len(g.Genre) != 2 || g.Genre[0] != 1 || g.Genre[1] != 4 {
		t.Errorf("Genre = %v, want [1 4]", g.Genre)
	}

	// A prefix matching both groups' columns is an overlap.
	if _, err := groupsByPrefix(cols, "actor_", "a"); !errors.Is(err, ErrGroupOverlap) {
		t.Errorf("groupsByPrefix(overlap) error = %v, want %v", err, ErrGroupOverlap)
	}
}
