// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"time"

	"github.com/tomtom215/wildmovies/internal/catalog"
	"github.com/tomtom215/wildmovies/internal/feed"
	"github.com/tomtom215/wildmovies/internal/recommend"
)

// State is the loaded, read-only artifact set shared by all interactions.
type State struct {
	Catalog     *catalog.Index
	Recommender *recommend.Recommender
	Selector    *feed.Selector

	// Format is the artifact format the state was loaded from.
	Format   string
	LoadedAt time.Time
}
