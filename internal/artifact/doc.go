// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

// Package artifact loads the precomputed recommendation artifacts once per
// process and assembles them into an immutable State.
//
// Two formats are supported:
//
//   - bundle: one JSON document (optionally .zst or .lz4 compressed) with
//     identifiers, titles, optional years, feature column names, actor and
//     genre column indices, the fitted neighbor rows and an optional scaler.
//   - tabular: a parquet or csv dataset read through DuckDB, a csv listing the
//     feature columns, and an optional scaler document. Feature groups come
//     from column name prefixes.
//
// Every row-alignment and group invariant is checked while loading. Any
// violation is returned as a *LoadError naming the artifact, and the process
// must not serve interactions.
package artifact
