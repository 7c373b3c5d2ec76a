// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/wildmovies/internal/config"
	"github.com/tomtom215/wildmovies/internal/metrics"
)

// maxErrorBodySize limits how much of an error response is kept.
const maxErrorBodySize = 64 * 1024

// DefaultMaxRetryDelay caps a backoff wait when the config leaves it unset.
const DefaultMaxRetryDelay = 10 * time.Second

// readBodyForError reads at most maxErrorBodySize bytes of r for error reporting.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	if len(body) == maxErrorBodySize {
		return string(body) + "\n... (truncated)"
	}
	return string(body)
}

// titleResponse is the subset of GET /titles/{id} the cards display.
type titleResponse struct {
	ID           string   `json:"id"`
	PrimaryTitle string   `json:"primaryTitle"`
	Plot         string   `json:"plot"`
	Genres       []string `json:"genres"`
	PrimaryImage *struct {
		URL string `json:"url"`
	} `json:"primaryImage"`
	Rating *struct {
		AggregateRating *float64 `json:"aggregateRating"`
	} `json:"rating"`
}

func (t *titleResponse) movie(id string) *Movie {
	m := &Movie{
		ID:     id,
		Title:  t.PrimaryTitle,
		Plot:   t.Plot,
		Genres: t.Genres,
	}
	if strings.TrimSpace(m.Title) == "" {
		m.Title = DefaultTitle
	}
	if strings.TrimSpace(m.Plot) == "" {
		m.Plot = DefaultPlot
	}
	if m.Genres == nil {
		m.Genres = []string{}
	}
	if t.PrimaryImage != nil {
		m.PosterURL = t.PrimaryImage.URL
	}
	if t.Rating != nil && t.Rating.AggregateRating != nil {
		r := *t.Rating.AggregateRating
		m.Rating = &r
	}
	return m
}

// Client talks to the movie metadata HTTP API.
//
// Requests are paced by a token bucket. HTTP 429 responses are retried with
// exponential backoff (RetryDelay, 2x, 4x, ...) up to MaxRetries times; a
// Retry-After header overrides the computed delay. No single wait exceeds
// MaxRetryDelay: backoff is clamped to it and a longer Retry-After fails the
// request.
//
// Safe for concurrent use.
type Client struct {
	baseURL        string
	apiKey         string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
	maxRetryDelay  time.Duration
	logger         zerolog.Logger
}

// NewClient creates a metadata API client.
//
//nolint:gocritic // hugeParam: cfg passed by value for immutability
func NewClient(cfg config.MetadataConfig, logger zerolog.Logger) *Client {
	maxDelay := cfg.MaxRetryDelay
	if maxDelay <= 0 {
		maxDelay = DefaultMaxRetryDelay
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:        rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryDelay,
		maxRetryDelay:  maxDelay,
		logger:         logger.With().Str("component", "metadata").Logger(),
	}
}

// Fetch retrieves the metadata of one title. Failures are returned in the
// Result and always match ErrUnavailable.
func (c *Client) Fetch(ctx context.Context, id string) Result {
	start := time.Now()

	m, err := c.fetch(ctx, id)
	if err != nil {
		metrics.RecordMetadataFetch(metrics.ResultUnavailable, time.Since(start))
		c.logger.Warn().Err(err).Str("id", id).Msg("movie metadata unavailable")
		return unavailable(id, err)
	}

	metrics.RecordMetadataFetch(metrics.ResultSuccess, time.Since(start))
	c.logger.Debug().
		Str("id", id).
		Str("title", m.Title).
		Dur("duration", time.Since(start)).
		Msg("movie metadata fetched")
	return Result{ID: id, Movie: m}
}

func (c *Client) fetch(ctx context.Context, id string) (*Movie, error) {
	reqURL := fmt.Sprintf("%s/titles/%s", c.baseURL, url.PathEscape(id))

	resp, err := c.doRequestWithRateLimit(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}

	var body titleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode title %s: %w", id, err)
	}
	return body.movie(id), nil
}

// doRequestWithRateLimit performs a GET, waiting on the limiter before each
// attempt and retrying HTTP 429 with backoff. The context cancels both waits.
func (c *Client) doRequestWithRateLimit(ctx context.Context, reqURL string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()
		if attempt >= c.maxRetries {
			return nil, &StatusError{
				StatusCode: http.StatusTooManyRequests,
				Body:       fmt.Sprintf("rate limit exceeded after %d retries", c.maxRetries),
			}
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if delay > c.maxRetryDelay {
			delay = c.maxRetryDelay
		}
		if d, ok := retryAfter(resp.Header.Get("Retry-After"), time.Now()); ok {
			if d > c.maxRetryDelay {
				return nil, &StatusError{
					StatusCode: http.StatusTooManyRequests,
					Body:       fmt.Sprintf("retry after %s exceeds the %s limit", d, c.maxRetryDelay),
				}
			}
			delay = d
		}
		metrics.RecordMetadataRetry()
		c.logger.Debug().Int("attempt", attempt+1).Dur("delay", delay).Msg("metadata API rate limited, backing off")

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}
}

// retryAfter parses a Retry-After header given either as seconds or as an
// HTTP date (RFC 9110).
func retryAfter(v string, now time.Time) (time.Duration, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		d := t.Sub(now)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}
