// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package catalog

import "fmt"

// Table is a column-oriented view over a tabular dataset.
type Table interface {
	// Strings returns a text column, or false if the column does not exist.
	Strings(column string) ([]string, bool)

	// Ints returns an integer column with nil for missing cells, or false if
	// the column does not exist.
	Ints(column string) ([]*int, bool)
}

// Columns names the catalog columns of a Table. Year is optional.
type Columns struct {
	ID    string
	Title string
	Year  string
}

// FromTable builds an Index from the identifier, title and optional year
// columns of t.
func FromTable(t Table, cols Columns) (*Index, error) {
	ids, ok := t.Strings(cols.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.ID)
	}
	titles, ok := t.Strings(cols.Title)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Title)
	}

	var years []*int
	if cols.Year != "" {
		// An absent year column just means no years are known.
		years, _ = t.Ints(cols.Year)
	}

	return New(ids, titles, years)
}
