// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/tomtom215/wildmovies/internal/blobstore"
	"github.com/tomtom215/wildmovies/internal/config"
)

func TestLoaderBundle(t *testing.T) {
	t.Parallel()

	store := memoryStoreWith(t, map[string][]byte{"bundle.json": encodeBundle(t, testBundle())})
	loader := NewLoader(store, bundleConfig("bundle.json"), 1, testLogger)

	state, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state.Format != config.FormatBundle {
		t.Errorf("Format = %q, want %q", state.Format, config.FormatBundle)
	}

	id, err := state.Catalog.Resolve("  alpha ")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	got, err := state.Recommender.Recommend(context.Background(), id, 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(A, 2) = %v, want %v", got, want)
	}

	minYear := 2018
	feed := state.Selector.Sample(10, &minYear)
	if len(feed) != 3 {
		t.Errorf("len(Sample(10, 2018)) = %d, want 3 (A, D, E)", len(feed))
	}
}

func TestLoaderCompressedBundles(t *testing.T) {
	t.Parallel()

	plain := encodeBundle(t, testBundle())
	for name, data := range map[string][]byte{
		"bundle.json.zst": zstdBytes(t, plain),
		"bundle.json.lz4": lz4Bytes(t, plain),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			store := memoryStoreWith(t, map[string][]byte{name: data})
			state, err := NewLoader(store, bundleConfig(name), 1, testLogger).Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if state.Catalog.Len() != 5 {
				t.Errorf("Catalog.Len() = %d, want 5", state.Catalog.Len())
			}
		})
	}
}

func TestLoaderMemoises(t *testing.T) {
	t.Parallel()

	store := memoryStoreWith(t, map[string][]byte{"bundle.json": encodeBundle(t, testBundle())})
	loader := NewLoader(store, bundleConfig("bundle.json"), 1, testLogger)

	var wg sync.WaitGroup
	states := make([]*State, 8)
	for i := range states {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := loader.Load(context.Background())
			if err != nil {
				t.Errorf("Load() error = %v", err)
			}
			states[i] = s
		}(i)
	}
	wg.Wait()

	for i, s := range states {
		if s != states[0] {
			t.Errorf("Load() #%d returned a different state", i)
		}
	}
}

func TestLoaderErrors(t *testing.T) {
	t.Parallel()

	misaligned := testBundle()
	misaligned.Neighbors.Rows = misaligned.Neighbors.Rows[:3]

	tests := []struct {
		name     string
		blobs    map[string][]byte
		cfg      config.ArtifactsConfig
		wantErr  error
		artifact string
	}{
		{
			name:     "missing bundle",
			blobs:    map[string][]byte{},
			cfg:      bundleConfig("bundle.json"),
			wantErr:  blobstore.ErrNotFound,
			artifact: "bundle.json",
		},
		{
			name:     "misaligned bundle",
			blobs:    map[string][]byte{"bundle.json": encodeBundle(t, misaligned)},
			cfg:      bundleConfig("bundle.json"),
			wantErr:  ErrMisaligned,
			artifact: "bundle.json",
		},
		{
			name:  "unknown format",
			blobs: map[string][]byte{},
			cfg: func() config.ArtifactsConfig {
				c := bundleConfig("bundle.json")
				c.Format = "pickle"
				return c
			}(),
			wantErr:  ErrUnsupportedFormat,
			artifact: "pickle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loader := NewLoader(memoryStoreWith(t, tt.blobs), tt.cfg, 1, testLogger)

			_, err := loader.Load(context.Background())
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("Load() error = %v, want *LoadError", err)
			}
			if le.Artifact != tt.artifact {
				t.Errorf("LoadError.Artifact = %q, want %q", le.Artifact, tt.artifact)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}

			// The failure is memoised too.
			_, again := loader.Load(context.Background())
			if again != err {
				t.Errorf("second Load() error = %v, want the first error", again)
			}
		})
	}
}

func TestLoadErrorWrapping(t *testing.T) {
	t.Parallel()

	inner := &LoadError{Artifact: "scaler.json", Err: ErrMisaligned}
	if got := loadErr("bundle.json", inner); got != error(inner) {
		t.Errorf("loadErr() rewrapped an existing LoadError: %v", got)
	}
	if msg := inner.Error(); msg != "load artifact scaler.json: artifacts are not row-aligned" {
		t.Errorf("Error() = %q", msg)
	}
}
