// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

// Package recommend finds the catalog titles most similar to a given title.
//
// # Algorithm
//
// For a catalog identifier the Recommender:
//
//  1. looks up the identifier's row in the catalog;
//  2. takes the row's raw feature vector and, when a Scaler is configured,
//     standardizes it with the fitted per-column mean and scale;
//  3. multiplies actor columns by the actor weight and genre columns by the
//     genre weight (scaling always happens first);
//  4. asks the neighbor index for the n+1 nearest rows;
//  5. drops the queried identifier by identity, wherever it ranks;
//  6. returns at most n identifiers, nearest first.
//
// The neighbor index holds unweighted rows, so a larger actor weight pulls
// titles that share cast with the query ahead of titles that do not.
//
// # Usage
//
//	rec, err := recommend.New(recommend.Config{
//	    Catalog:  cat,
//	    Features: feats,
//	    Scaler:   scaler,
//	    Index:    idx,
//	    Weights:  recommend.DefaultWeights(),
//	}, logger)
//	ids, err := rec.Recommend(ctx, "tt0133093", 3)
//
// # Thread Safety
//
// A Recommender is immutable after New and safe for concurrent use. Every
// query works on its own copy of the feature vector.
package recommend
