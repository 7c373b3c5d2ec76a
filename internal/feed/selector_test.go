// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package feed

import (
	"io"
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wildmovies/internal/catalog"
)

func yr(v int) *int { return &v }

func testRecords() []catalog.Record {
	return []catalog.Record{
		{ID: "a", Title: "A", Year: yr(2015)},
		{ID: "b", Title: "B", Year: yr(2018)},
		{ID: "c", Title: "C", Year: yr(2021)},
		{ID: "d", Title: "D"},
		{ID: "e", Title: "E", Year: yr(2023)},
		{ID: "c", Title: "C again", Year: yr(2021)},
	}
}

func newTestSelector(seed int64) *Selector {
	return NewSelector(testRecords(), seed, zerolog.New(io.Discard))
}

func TestEligible(t *testing.T) {
	t.Parallel()
	s := newTestSelector(1)

	tests := []struct {
		name    string
		minYear *int
		want    []string
	}{
		{"no filter", nil, []string{"a", "b", "c", "d", "e"}},
		{"since 2018", yr(2018), []string{"b", "c", "e"}},
		{"since 2022", yr(2022), []string{"e"}},
		{"future", yr(3000), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := s.Eligible(tt.minYear)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampleDistinctAndFiltered(t *testing.T) {
	t.Parallel()
	s := newTestSelector(7)

	for i := 0; i < 50; i++ {
		got := s.Sample(2, yr(2018))
		if len(got) != 2 {
			t.Fatalf("len(Sample(2)) = %d, want 2", len(got))
		}
		if got[0] == got[1] {
			t.Fatalf("Sample(2) = %v, want distinct identifiers", got)
		}
		for _, id := range got {
			if id != "b" && id != "c" && id != "e" {
				t.Fatalf("Sample(2) = %v, contains %q released before 2018", got, id)
			}
		}
	}
}

func TestSampleExceedsEligible(t *testing.T) {
	t.Parallel()
	s := newTestSelector(3)

	got := s.Sample(10, yr(2018))
	sort.Strings(got)
	if want := []string{"b", "c", "e"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sample(10, 2018) = %v, want %v", got, want)
	}

	if got := s.Sample(3, yr(3000)); len(got) != 0 {
		t.Errorf("Sample(3, 3000) = %v, want empty", got)
	}
}

func TestSampleInvalidSize(t *testing.T) {
	t.Parallel()
	s := newTestSelector(3)

	if got := s.Sample(0, nil); got != nil {
		t.Errorf("Sample(0) = %v, want nil", got)
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a := newTestSelector(42)
	b := newTestSelector(42)
	for i := 0; i < 10; i++ {
		ga, gb := a.Sample(3, nil), b.Sample(3, nil)
		if !reflect.DeepEqual(ga, gb) {
			t.Fatalf("round %d: %v != %v with equal seeds", i, ga, gb)
		}
	}
}

func TestSampleUniform(t *testing.T) {
	t.Parallel()
	s := newTestSelector(11)

	const rounds = 6000
	counts := map[string]int{}
	for i := 0; i < rounds; i++ {
		for _, id := range s.Sample(1, nil) {
			counts[id]++
		}
	}

	// 5 distinct ids, expected 1200 each.
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		if counts[id] < 1000 || counts[id] > 1400 {
			t.Errorf("id %q drawn %d times out of %d, want about %d", id, counts[id], rounds, rounds/5)
		}
	}
}

func TestSampleConcurrent(t *testing.T) {
	t.Parallel()
	s := newTestSelector(5)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := s.Sample(3, nil); len(got) != 3 {
				t.Errorf("len(Sample(3)) = %d, want 3", len(got))
			}
		}()
	}
	wg.Wait()
}

func TestNewSelectorCopiesRecords(t *testing.T) {
	t.Parallel()
	recs := testRecords()
	s := NewSelector(recs, 1, zerolog.New(io.Discard))
	recs[0].ID = "changed"

	if got := s.Eligible(nil)[0]; got != "a" {
		t.Errorf("Eligible()[0] = %q, want a", got)
	}
}
