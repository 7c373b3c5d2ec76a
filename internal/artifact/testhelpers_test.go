// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"io"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wildmovies/internal/blobstore"
	"github.com/tomtom215/wildmovies/internal/config"
)

var testLogger = zerolog.New(io.Discard)

func yearPtr(v int) *int { return &v }

// testBundle is a five-title catalog: B is nearest to A, then C.
// Columns: actor_a, genre_x, other.
func testBundle() *Bundle {
	return &Bundle{
		IDs:            []string{"A", "B", "C", "D", "E"},
		Titles:         []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"},
		Years:          []*int{yearPtr(2019), yearPtr(2015), nil, yearPtr(2021), yearPtr(2018)},
		FeatureColumns: []string{"actor_a", "genre_x", "other"},
		ActorColumns:   []int{0},
		GenreColumns:   []int{1},
		Neighbors: NeighborModel{
			Metric: "euclidean",
			Rows: [][]float64{
				{0, 0, 0},
				{0, 0, 1},
				{0, 0, 2},
				{0, 1, 5},
				{0, 1, 9},
			},
		},
	}
}

func encodeBundle(t *testing.T, b *Bundle) []byte {
	t.Helper()
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal bundle: %v", err)
	}
	return data
}

func bundleConfig(name string) config.ArtifactsConfig {
	return config.ArtifactsConfig{
		Source:      config.SourceLocal,
		Format:      config.FormatBundle,
		Bundle:      name,
		IDColumn:    "ID_film",
		TitleColumn: "Titre",
		YearColumn:  "Année",
		ActorPrefix: "actor_",
		GenrePrefix: "genre_",
		Metric:      "euclidean",
		MinkowskiP:  2,
		LoadTimeout: time.Minute,
	}
}

func memoryStoreWith(t *testing.T, blobs map[string][]byte) *blobstore.MemoryStore {
	t.Helper()
	store := blobstore.NewMemoryStore()
	for name, data := range blobs {
		store.Put(name, data)
	}
	return store
}
