// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wildmovies/internal/catalog"
	"github.com/tomtom215/wildmovies/internal/feed"
	"github.com/tomtom215/wildmovies/internal/logging"
	"github.com/tomtom215/wildmovies/internal/metadata"
	"github.com/tomtom215/wildmovies/internal/metrics"
	"github.com/tomtom215/wildmovies/internal/recommend"
)

// ErrInternal is what the renderer sees when the loaded artifacts are
// inconsistent. The detail is logged, not shown.
var ErrInternal = errors.New("something went wrong, please try another title")

// Resolver maps a typed title to an identifier.
type Resolver interface {
	Resolve(title string) (string, error)
}

// Recommender returns identifiers similar to id.
type Recommender interface {
	Recommend(ctx context.Context, id string, n int) ([]string, error)
}

// Sampler draws the default feed.
type Sampler interface {
	Sample(n int, minYear *int) []string
}

// Options control result sizes.
type Options struct {
	// Count is the number of recommendations per search.
	Count int

	// FeedSize is the number of titles in the default feed.
	FeedSize int

	// MinYear filters the feed. 0 disables the filter.
	MinYear int

	// Concurrency caps parallel card fetches.
	Concurrency int
}

// Service runs session interactions against one loaded catalog.
type Service struct {
	resolver    Resolver
	recommender Recommender
	sampler     Sampler
	provider    metadata.Provider
	opts        Options
	logger      zerolog.Logger
}

// New creates a Service. provider may be nil when only Search and
// DefaultFeed are used.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(resolver Resolver, recommender Recommender, sampler Sampler, provider metadata.Provider, opts Options, logger zerolog.Logger) *Service {
	if opts.Count < 1 {
		opts.Count = recommend.DefaultCount
	}
	if opts.FeedSize < 1 {
		opts.FeedSize = feed.DefaultSize
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Service{
		resolver:    resolver,
		recommender: recommender,
		sampler:     sampler,
		provider:    provider,
		opts:        opts,
		logger:      logger.With().Str("component", "session").Logger(),
	}
}

// Search resolves title and recommends similar titles. An unknown title is
// not an error: the result has StatusNotFound and nothing else is done.
func (s *Service) Search(ctx context.Context, title string) (SearchResult, error) {
	ctx = s.interaction(ctx)
	log := logging.Ctx(ctx)
	start := time.Now()

	res := SearchResult{Query: title, Status: StatusNotFound}

	id, err := s.resolver.Resolve(title)
	if errors.Is(err, catalog.ErrNotFound) {
		metrics.RecordSearch(metrics.OutcomeNotFound, time.Since(start))
		log.Info().Str("title", title).Msg("title not found")
		return res, nil
	}
	if err != nil {
		metrics.RecordSearch(metrics.OutcomeError, time.Since(start))
		return res, fmt.Errorf("resolve title: %w", err)
	}

	recStart := time.Now()
	ids, err := s.recommender.Recommend(ctx, id, s.opts.Count)
	if err != nil {
		metrics.RecordSearch(metrics.OutcomeError, time.Since(start))
		if errors.Is(err, recommend.ErrUnknownIdentifier) {
			log.Error().Err(err).Str("title", title).Str("id", id).Msg("resolved identifier missing from recommender")
			return res, ErrInternal
		}
		return res, fmt.Errorf("recommend: %w", err)
	}
	metrics.RecordRecommendation(time.Since(recStart), len(ids))
	metrics.RecordSearch(metrics.OutcomeFound, time.Since(start))

	res.Status = StatusFound
	res.SearchedID = id
	res.RecommendedIDs = ids

	log.Info().
		Str("title", title).
		Str("id", id).
		Strs("recommended", ids).
		Dur("duration", time.Since(start)).
		Msg("search complete")
	return res, nil
}

// DefaultFeed samples the "now showing" identifiers.
func (s *Service) DefaultFeed(ctx context.Context) []string {
	ctx = s.interaction(ctx)

	var minYear *int
	if s.opts.MinYear > 0 {
		y := s.opts.MinYear
		minYear = &y
	}
	ids := s.sampler.Sample(s.opts.FeedSize, minYear)

	logging.Ctx(ctx).Debug().Strs("ids", ids).Msg("feed sampled")
	return ids
}

// SearchPage runs Search and fetches the cards to display. The searched
// movie is fetched first; when it is unavailable the page carries only that
// card and no recommendations.
func (s *Service) SearchPage(ctx context.Context, title string) (SearchPage, error) {
	ctx = s.interaction(ctx)

	res, err := s.Search(ctx, title)
	page := SearchPage{Search: res}
	if err != nil || res.Status != StatusFound {
		return page, err
	}

	searched := s.fetchOne(ctx, res.SearchedID)
	page.Searched = &searched
	if !searched.Available() {
		logging.Ctx(ctx).Warn().Str("id", res.SearchedID).Msg("searched movie unavailable, skipping recommendations")
		return page, nil
	}

	page.Recommendations = s.fetchAll(ctx, res.RecommendedIDs)
	return page, nil
}

// FeedPage samples the feed and fetches its cards.
func (s *Service) FeedPage(ctx context.Context) FeedPage {
	ctx = s.interaction(ctx)
	return FeedPage{Cards: s.fetchAll(ctx, s.DefaultFeed(ctx))}
}

func (s *Service) fetchOne(ctx context.Context, id string) metadata.Result {
	if s.provider == nil {
		return metadata.Result{ID: id, Err: metadata.ErrUnavailable}
	}
	return s.provider.Fetch(ctx, id)
}

func (s *Service) fetchAll(ctx context.Context, ids []string) []metadata.Result {
	if s.provider == nil {
		out := make([]metadata.Result, len(ids))
		for i, id := range ids {
			out[i] = metadata.Result{ID: id, Err: metadata.ErrUnavailable}
		}
		return out
	}
	return metadata.FetchAll(ctx, s.provider, ids, s.opts.Concurrency)
}

// interaction attaches the service logger, and an interaction ID unless ctx
// already carries one.
func (s *Service) interaction(ctx context.Context) context.Context {
	ctx = logging.ContextWithLogger(ctx, s.logger)
	if logging.InteractionIDFromContext(ctx) != "" {
		return ctx
	}
	return logging.ContextWithNewInteractionID(ctx)
}
