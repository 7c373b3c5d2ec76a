// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package catalog

import (
	"fmt"
	"strings"
)

// Index maps normalized titles to identifiers and identifiers to rows.
type Index struct {
	records    []Record
	rows       map[string]int
	titles     map[string]string
	collisions int
}

// New builds an Index from parallel identifier, title and year sequences.
// Row i of the index is (ids[i], titles[i], years[i]). years may be nil when
// no release years are known; otherwise it must match ids in length.
func New(ids, titles []string, years []*int) (*Index, error) {
	if len(ids) != len(titles) {
		return nil, fmt.Errorf("%w: %d identifiers, %d titles", ErrLengthMismatch, len(ids), len(titles))
	}
	if years != nil && len(years) != len(ids) {
		return nil, fmt.Errorf("%w: %d identifiers, %d years", ErrLengthMismatch, len(ids), len(years))
	}

	idx := &Index{
		records: make([]Record, len(ids)),
		rows:    make(map[string]int, len(ids)),
		titles:  make(map[string]string, len(ids)),
	}

	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w at row %d", ErrEmptyID, i)
		}
		if prev, ok := idx.rows[id]; ok {
			return nil, fmt.Errorf("%w: %q at rows %d and %d", ErrDuplicateID, id, prev, i)
		}
		idx.rows[id] = i

		rec := Record{ID: id, Title: titles[i]}
		if years != nil && years[i] != nil {
			y := *years[i]
			rec.Year = &y
		}
		idx.records[i] = rec

		key := NormalizeTitle(titles[i])
		if key == "" {
			continue
		}
		if _, taken := idx.titles[key]; taken {
			idx.collisions++
			continue
		}
		idx.titles[key] = id
	}

	return idx, nil
}

// Resolve returns the identifier for title after trimming and lower-casing.
func (x *Index) Resolve(title string) (string, error) {
	key := NormalizeTitle(title)
	if key == "" {
		return "", ErrNotFound
	}
	id, ok := x.titles[key]
	if !ok {
		return "", ErrNotFound
	}
	return id, nil
}

// Row returns the row position of id.
func (x *Index) Row(id string) (int, bool) {
	row, ok := x.rows[id]
	return row, ok
}

// ID returns the identifier at row. It panics if row is out of range.
func (x *Index) ID(row int) string {
	return x.records[row].ID
}

// Record returns the record at row. It panics if row is out of range.
func (x *Index) Record(row int) Record {
	return x.records[row]
}

// Records returns a copy of all records in row order.
func (x *Index) Records() []Record {
	out := make([]Record, len(x.records))
	copy(out, x.records)
	return out
}

// Len returns the number of rows.
func (x *Index) Len() int {
	return len(x.records)
}

// Titles returns the number of distinct normalized titles.
func (x *Index) Titles() int {
	return len(x.titles)
}

// Collisions returns how many rows lost their title to an earlier row.
func (x *Index) Collisions() int {
	return x.collisions
}
