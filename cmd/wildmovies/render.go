// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tomtom215/wildmovies/internal/metadata"
	"github.com/tomtom215/wildmovies/internal/session"
)

// maxPlotWidth truncates plots on cards.
const maxPlotWidth = 160

func renderFeedPage(w io.Writer, page session.FeedPage) error {
	if _, err := fmt.Fprintln(w, "== Now showing =="); err != nil {
		return err
	}
	if len(page.Cards) == 0 {
		_, err := fmt.Fprintln(w, "No recent titles in the catalog.")
		return err
	}
	return renderCards(w, page.Cards)
}

func renderSearchPage(w io.Writer, page session.SearchPage) error {
	if page.Search.Status != session.StatusFound {
		_, err := fmt.Fprintf(w, "Movie not found: %q\n", page.Search.Query)
		return err
	}

	if _, err := fmt.Fprintln(w, "\n== Your search =="); err != nil {
		return err
	}
	if err := renderCards(w, []metadata.Result{*page.Searched}); err != nil {
		return err
	}
	if !page.Searched.Available() {
		return nil
	}

	if _, err := fmt.Fprintln(w, "\n== You may also like =="); err != nil {
		return err
	}
	if len(page.Recommendations) == 0 {
		_, err := fmt.Fprintln(w, "No similar titles.")
		return err
	}
	return renderCards(w, page.Recommendations)
}

// renderCards writes one aligned block per card.
func renderCards(w io.Writer, cards []metadata.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, c := range cards {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		if !c.Available() {
			fmt.Fprintf(tw, "  %s\tMovie data unavailable\n", c.ID)
			continue
		}
		m := c.Movie
		fmt.Fprintf(tw, "  Title\t%s\n", m.Title)
		fmt.Fprintf(tw, "  Rating\t%s\n", formatRating(m.Rating))
		if len(m.Genres) > 0 {
			fmt.Fprintf(tw, "  Genres\t%s\n", strings.Join(m.Genres, ", "))
		}
		fmt.Fprintf(tw, "  Plot\t%s\n", truncate(m.Plot, maxPlotWidth))
		if m.PosterURL != "" {
			fmt.Fprintf(tw, "  Poster\t%s\n", m.PosterURL)
		}
	}
	return tw.Flush()
}

func formatRating(r *float64) string {
	if r == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*r, 'f', 1, 64) + "/10"
}

// truncate cuts s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
