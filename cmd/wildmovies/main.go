// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

// Package main is the WildMovies terminal session.
//
// WildMovies loads a precomputed movie catalog and nearest-neighbor model
// once at startup, shows a "now showing" feed of recent titles, then reads
// titles from standard input, one per line. Each title found in the catalog
// is shown with its similar titles; cards are filled from the remote movie
// metadata API.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, optional .env, environment (Koanf v2)
//  2. Logging: zerolog on stderr, so the session output on stdout stays clean
//  3. Artifacts: bundle or tabular artifacts from a local directory, S3 or MinIO;
//     any load failure is fatal
//  4. Feed page, then the search loop until EOF or ":q"
//
// Metrics are written to METRICS_TEXTFILE on exit when it is set.
//
// # Example Usage
//
//	export ARTIFACTS_DIR=./artifacts
//	export ARTIFACTS_BUNDLE=nn_model_light.json.zst
//	./wildmovies
//
// Tabular artifacts in MinIO:
//
//	export ARTIFACTS_SOURCE=minio
//	export ARTIFACTS_ENDPOINT=localhost:9000
//	export ARTIFACTS_BUCKET=wildmovies
//	export ARTIFACTS_ACCESS_KEY=minioadmin
//	export ARTIFACTS_SECRET_KEY=minioadmin
//	export ARTIFACTS_FORMAT=tabular
//	./wildmovies
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tomtom215/wildmovies/internal/artifact"
	"github.com/tomtom215/wildmovies/internal/config"
	"github.com/tomtom215/wildmovies/internal/logging"
	"github.com/tomtom215/wildmovies/internal/metadata"
	"github.com/tomtom215/wildmovies/internal/metrics"
	"github.com/tomtom215/wildmovies/internal/session"
)

// quitCommand ends the session.
const quitCommand = ":q"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("source", cfg.Artifacts.Source).
		Str("format", cfg.Artifacts.Format).
		Str("metadata_url", cfg.Metadata.BaseURL).
		Msg("Starting WildMovies")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService(ctx, cfg)
	if err != nil {
		var le *artifact.LoadError
		if errors.As(err, &le) {
			logging.Fatal().Err(err).Str("artifact", le.Artifact).Msg("Failed to load artifacts")
		}
		logging.Fatal().Err(err).Msg("Failed to start session")
	}

	runErr := run(ctx, svc, os.Stdin, os.Stdout)

	if path := cfg.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			logging.Error().Err(err).Str("path", path).Msg("Failed to write metrics textfile")
		}
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logging.Fatal().Err(runErr).Msg("Session failed")
	}
	logging.Info().Msg("Session ended")
}

// newService loads the artifacts and wires the session service.
func newService(ctx context.Context, cfg *config.Config) (*session.Service, error) {
	store, err := artifact.OpenStore(ctx, cfg.Artifacts)
	if err != nil {
		return nil, fmt.Errorf("open artifact store: %w", err)
	}

	loader := artifact.NewLoader(store, cfg.Artifacts, cfg.Feed.Seed, logging.Logger())
	state, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	provider := metadata.NewProvider(cfg.Metadata, logging.Logger())

	return session.New(state.Catalog, state.Recommender, state.Selector, provider, session.Options{
		Count:       cfg.Recommend.Count,
		FeedSize:    cfg.Feed.Size,
		MinYear:     cfg.Feed.MinYear,
		Concurrency: cfg.Metadata.Concurrency,
	}, logging.Logger()), nil
}

// run renders the feed page, then one search page per input line until EOF,
// the quit command or cancellation.
func run(ctx context.Context, svc *session.Service, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := renderFeedPage(out, svc.FeedPage(ctx)); err != nil {
		return err
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		sc.Split(queryLines())
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		if _, err := fmt.Fprint(out, "\nSearch a title (:q to quit): "); err != nil {
			return err
		}

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(out) //nolint:errcheck // best-effort newline after EOF
			select {
			case err := <-scanErr:
				return err
			default:
				return ctx.Err()
			}
		}

		title := strings.TrimSpace(line)
		if title == quitCommand {
			return nil
		}
		if title == "" {
			continue
		}

		page, err := svc.SearchPage(ctx, title)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			logging.Error().Err(err).Str("title", title).Msg("Search failed")
			if _, werr := fmt.Fprintf(out, "%s\n", userMessage(err)); werr != nil {
				return werr
			}
			continue
		}
		if err := renderSearchPage(out, page); err != nil {
			return err
		}
	}
}

// userMessage is what the session shows for a failed search.
func userMessage(err error) string {
	if errors.Is(err, session.ErrInternal) {
		return session.ErrInternal.Error()
	}
	return "Search failed, please try again."
}
