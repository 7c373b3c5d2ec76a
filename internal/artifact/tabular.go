// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	// DuckDB driver - reads parquet and csv datasets in place
	_ "github.com/duckdb/duckdb-go/v2"
)

// TabularSource names the columns of a tabular dataset.
type TabularSource struct {
	// Path is a local .parquet or .csv file.
	Path string

	IDColumn    string
	TitleColumn string

	// YearColumn is optional. Non-numeric years read as missing.
	YearColumn string
}

// Table is a dataset held in memory, column by column.
type Table struct {
	columns map[string]struct{}
	ids     []string
	titles  []string
	years   []*int

	idColumn    string
	titleColumn string
	yearColumn  string

	// Features has one row per record, in FeatureColumns order.
	Features [][]float64

	FeatureColumns []string
}

// Strings returns the identifier or title column.
func (t *Table) Strings(column string) ([]string, bool) {
	if _, ok := t.columns[column]; !ok {
		return nil, false
	}
	switch column {
	case t.idColumn:
		return t.ids, true
	case t.titleColumn:
		return t.titles, true
	default:
		return nil, false
	}
}

// Ints returns the year column.
func (t *Table) Ints(column string) ([]*int, bool) {
	if column == "" || column != t.yearColumn || t.years == nil {
		return nil, false
	}
	return t.years, true
}

// Len returns the number of rows read.
func (t *Table) Len() int {
	return len(t.ids)
}

// TabularReader reads datasets through an in-memory DuckDB instance.
type TabularReader struct {
	db *sql.DB
}

// NewTabularReader opens an in-memory DuckDB connection.
func NewTabularReader() (*TabularReader, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &TabularReader{db: db}, nil
}

// Close closes the DuckDB connection.
func (r *TabularReader) Close() error {
	return r.db.Close()
}

// ReadFeatureColumns reads the "feature" column of a csv listing, in file order.
func (r *TabularReader) ReadFeatureColumns(ctx context.Context, path string) ([]string, error) {
	query := fmt.Sprintf("SELECT CAST(feature AS VARCHAR) FROM read_csv_auto(%s, header = true)", quoteLiteral(path))
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read feature columns: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan feature column: %w", err)
		}
		if !name.Valid || strings.TrimSpace(name.String) == "" {
			return nil, fmt.Errorf("feature column %d is blank", len(out))
		}
		out = append(out, name.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feature columns: %w", err)
	}
	if len(out) == 0 {
		return nil, errors.New("feature column list is empty")
	}
	return out, nil
}

// ReadTable reads the catalog columns and the listed feature columns.
// NULL or non-numeric feature cells read as 0.
func (r *TabularReader) ReadTable(ctx context.Context, src TabularSource, features []string) (*Table, error) {
	from, err := tableFunction(src.Path)
	if err != nil {
		return nil, err
	}

	columns, err := r.columns(ctx, from)
	if err != nil {
		return nil, err
	}

	t := &Table{
		columns:        columns,
		idColumn:       src.IDColumn,
		titleColumn:    src.TitleColumn,
		FeatureColumns: features,
	}
	for _, f := range features {
		if _, ok := columns[f]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, f)
		}
	}

	// Missing id or title columns are reported by catalog.FromTable.
	_, hasID := columns[src.IDColumn]
	_, hasTitle := columns[src.TitleColumn]
	if !hasID || !hasTitle {
		return t, nil
	}
	_, hasYear := columns[src.YearColumn]
	hasYear = hasYear && src.YearColumn != ""
	if hasYear {
		t.yearColumn = src.YearColumn
	}

	selects := []string{
		fmt.Sprintf("CAST(%s AS VARCHAR)", quoteIdent(src.IDColumn)),
		fmt.Sprintf("CAST(%s AS VARCHAR)", quoteIdent(src.TitleColumn)),
	}
	if hasYear {
		selects = append(selects, fmt.Sprintf("TRY_CAST(TRY_CAST(%s AS DOUBLE) AS INTEGER)", quoteIdent(src.YearColumn)))
	}
	for _, f := range features {
		selects = append(selects, fmt.Sprintf("COALESCE(TRY_CAST(%s AS DOUBLE), 0)", quoteIdent(f)))
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selects, ", "), from)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	defer rows.Close()

	t.ids = []string{}
	t.titles = []string{}
	if hasYear {
		t.years = []*int{}
	}

	for rows.Next() {
		var (
			id, title sql.NullString
			year      sql.NullInt64
		)
		feat := make([]float64, len(features))
		dest := make([]any, 0, len(selects))
		dest = append(dest, &id, &title)
		if hasYear {
			dest = append(dest, &year)
		}
		for i := range feat {
			dest = append(dest, &feat[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan dataset row %d: %w", len(t.ids), err)
		}

		t.ids = append(t.ids, id.String)
		t.titles = append(t.titles, title.String)
		if hasYear {
			var y *int
			if year.Valid {
				v := int(year.Int64)
				y = &v
			}
			t.years = append(t.years, y)
		}
		t.Features = append(t.Features, feat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dataset: %w", err)
	}
	return t, nil
}

// columns lists the dataset's column names.
func (r *TabularReader) columns(ctx context.Context, from string) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT * FROM "+from+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("inspect dataset: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("inspect dataset columns: %w", err)
	}
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out, nil
}

// tableFunction returns the DuckDB table function call reading path.
func tableFunction(path string) (string, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".parquet"):
		return fmt.Sprintf("read_parquet(%s)", quoteLiteral(path)), nil
	case strings.HasSuffix(lower, ".csv"):
		return fmt.Sprintf("read_csv_auto(%s, header = true)", quoteLiteral(path)), nil
	default:
		return "", fmt.Errorf("%w: dataset %q must be .parquet or .csv", ErrUnsupportedFormat, path)
	}
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
