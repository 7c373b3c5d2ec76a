// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/wildmovies/internal/blobstore"
	"github.com/tomtom215/wildmovies/internal/catalog"
	"github.com/tomtom215/wildmovies/internal/config"
	"github.com/tomtom215/wildmovies/internal/feed"
	"github.com/tomtom215/wildmovies/internal/knn"
	"github.com/tomtom215/wildmovies/internal/metrics"
	"github.com/tomtom215/wildmovies/internal/recommend"
)

// Loader loads artifacts at most once. The first Load does the work; later
// calls return the same State or the same error.
type Loader struct {
	store    blobstore.Store
	cfg      config.ArtifactsConfig
	feedSeed int64
	logger   zerolog.Logger

	once  sync.Once
	state *State
	err   error
}

// NewLoader creates a Loader reading from store. feedSeed seeds the feed
// selector; 0 seeds from the clock.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLoader(store blobstore.Store, cfg config.ArtifactsConfig, feedSeed int64, logger zerolog.Logger) *Loader {
	return &Loader{
		store:    store,
		cfg:      cfg,
		feedSeed: feedSeed,
		logger:   logger.With().Str("component", "artifact").Logger(),
	}
}

// Load returns the loaded State. Failures are *LoadError values.
func (l *Loader) Load(ctx context.Context) (*State, error) {
	l.once.Do(func() {
		l.state, l.err = l.load(ctx)
	})
	return l.state, l.err
}

func (l *Loader) load(ctx context.Context) (*State, error) {
	start := time.Now()

	if l.cfg.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.cfg.LoadTimeout)
		defer cancel()
	}

	l.logger.Info().
		Str("format", l.cfg.Format).
		Str("source", l.cfg.Source).
		Msg("loading artifacts")

	var (
		comp *components
		err  error
	)
	switch l.cfg.Format {
	case config.FormatBundle:
		comp, err = l.loadBundle(ctx)
	case config.FormatTabular:
		comp, err = l.loadTabular(ctx)
	default:
		err = loadErr(l.cfg.Format, fmt.Errorf("%w: %q", ErrUnsupportedFormat, l.cfg.Format))
	}
	if err != nil {
		return nil, l.fail(err)
	}

	rec, err := recommend.New(recommend.Config{
		Catalog:  comp.catalog,
		Features: comp.features,
		Scaler:   comp.scaler,
		Index:    comp.index,
		Weights:  recommend.DefaultWeights(),
	}, l.logger)
	if err != nil {
		return nil, l.fail(loadErr(l.primaryArtifact(), err))
	}

	state := &State{
		Catalog:     comp.catalog,
		Recommender: rec,
		Selector:    feed.NewSelector(comp.catalog.Records(), l.feedSeed, l.logger),
		Format:      l.cfg.Format,
		LoadedAt:    time.Now(),
	}

	elapsed := time.Since(start)
	metrics.RecordArtifactLoad(l.cfg.Format, elapsed, comp.catalog.Len(), comp.catalog.Collisions())

	_, cols := comp.features.Raw.Dims()
	l.logger.Info().
		Int("titles", comp.catalog.Len()).
		Int("features", cols).
		Int("actor_columns", len(comp.features.Groups.Actor)).
		Int("genre_columns", len(comp.features.Groups.Genre)).
		Bool("scaled", comp.scaler != nil).
		Str("metric", comp.index.Metric().String()).
		Dur("duration", elapsed).
		Msg("artifacts loaded")

	if n := comp.catalog.Collisions(); n > 0 {
		l.logger.Warn().
			Int("collisions", n).
			Msg("titles shared by several records resolve to the first record")
	}

	return state, nil
}

// fail records and logs a load failure.
func (l *Loader) fail(err error) error {
	artifact := ""
	var le *LoadError
	if errors.As(err, &le) {
		artifact = le.Artifact
	}
	metrics.RecordArtifactLoadError(artifact)
	l.logger.Error().Err(err).Str("artifact", artifact).Msg("artifact load failed")
	return err
}

func (l *Loader) primaryArtifact() string {
	if l.cfg.Format == config.FormatTabular {
		return l.cfg.Dataset
	}
	return l.cfg.Bundle
}

func (l *Loader) loadBundle(ctx context.Context) (*components, error) {
	name := l.cfg.Bundle

	rc, err := openBlob(ctx, l.store, name)
	if err != nil {
		return nil, loadErr(name, err)
	}
	defer rc.Close()

	b, err := DecodeBundle(rc)
	if err != nil {
		return nil, loadErr(name, err)
	}
	comp, err := b.build()
	if err != nil {
		return nil, loadErr(name, err)
	}
	return comp, nil
}

func (l *Loader) loadTabular(ctx context.Context) (*components, error) {
	reader, err := NewTabularReader()
	if err != nil {
		return nil, loadErr(l.cfg.Dataset, err)
	}
	defer reader.Close()

	featPath, cleanupFeat, err := localPath(ctx, l.store, l.cfg.FeatureColumns, "")
	if err != nil {
		return nil, loadErr(l.cfg.FeatureColumns, err)
	}
	defer cleanupFeat()

	columns, err := reader.ReadFeatureColumns(ctx, featPath)
	if err != nil {
		return nil, loadErr(l.cfg.FeatureColumns, err)
	}
	groups, err := groupsByPrefix(columns, l.cfg.ActorPrefix, l.cfg.GenrePrefix)
	if err != nil {
		return nil, loadErr(l.cfg.FeatureColumns, err)
	}

	dataPath, cleanupData, err := localPath(ctx, l.store, l.cfg.Dataset, "")
	if err != nil {
		return nil, loadErr(l.cfg.Dataset, err)
	}
	defer cleanupData()

	table, err := reader.ReadTable(ctx, TabularSource{
		Path:        dataPath,
		IDColumn:    l.cfg.IDColumn,
		TitleColumn: l.cfg.TitleColumn,
		YearColumn:  l.cfg.YearColumn,
	}, columns)
	if err != nil {
		return nil, loadErr(l.cfg.Dataset, err)
	}

	cat, err := catalog.FromTable(table, catalog.Columns{
		ID:    l.cfg.IDColumn,
		Title: l.cfg.TitleColumn,
		Year:  l.cfg.YearColumn,
	})
	if err != nil {
		return nil, loadErr(l.cfg.Dataset, err)
	}
	if cat.Len() == 0 {
		return nil, loadErr(l.cfg.Dataset, ErrEmptyCatalog)
	}

	cols := len(columns)
	data := make([]float64, 0, cat.Len()*cols)
	for i, row := range table.Features {
		if err := checkFinite(i, row); err != nil {
			return nil, loadErr(l.cfg.Dataset, err)
		}
		data = append(data, row...)
	}
	raw := mat.NewDense(cat.Len(), cols, data)

	scaler, err := l.loadScaler(ctx, cols)
	if err != nil {
		return nil, loadErr(l.cfg.Scaler, err)
	}

	metric, err := knn.ParseMetric(l.cfg.Metric)
	if err != nil {
		return nil, loadErr(l.cfg.Dataset, err)
	}

	fitted := mat.Matrix(raw)
	if scaler != nil {
		fitted = scaler.TransformMatrix(raw)
	}
	idx, err := knn.New(fitted, metric, l.cfg.MinkowskiP)
	if err != nil {
		return nil, loadErr(l.cfg.Dataset, err)
	}

	return &components{
		catalog:  cat,
		features: &recommend.Features{Columns: columns, Raw: raw, Groups: groups},
		scaler:   scaler,
		index:    idx,
	}, nil
}

// loadScaler reads the optional scaler document. A missing document means
// no scaling.
func (l *Loader) loadScaler(ctx context.Context, cols int) (*recommend.Scaler, error) {
	if l.cfg.Scaler == "" {
		return nil, nil
	}

	rc, err := openBlob(ctx, l.store, l.cfg.Scaler)
	if errors.Is(err, blobstore.ErrNotFound) {
		l.logger.Info().Str("scaler", l.cfg.Scaler).Msg("no scaler found, features are indexed unscaled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var doc ScalerModel
	if err := json.NewDecoder(rc).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scaler: %w", err)
	}
	if len(doc.Mean) != cols {
		return nil, fmt.Errorf("%w: scaler has %d columns, want %d", ErrMisaligned, len(doc.Mean), cols)
	}
	return recommend.NewScaler(doc.Mean, doc.Scale)
}
