// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	// interactionIDKey identifies one user interaction (a search or a feed render).
	interactionIDKey contextKey = "interaction_id"

	loggerKey contextKey = "logger"
)

// GenerateInteractionID creates a short unique interaction ID.
// Returns the first 8 characters of a UUID for readability.
func GenerateInteractionID() string {
	return uuid.New().String()[:8]
}

// ContextWithInteractionID returns a new context with the given interaction ID.
func ContextWithInteractionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, interactionIDKey, id)
}

// ContextWithNewInteractionID returns a context with a freshly generated interaction ID.
func ContextWithNewInteractionID(ctx context.Context) context.Context {
	return ContextWithInteractionID(ctx, GenerateInteractionID())
}

// InteractionIDFromContext retrieves the interaction ID from context.
// Returns empty string if not present.
func InteractionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(interactionIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithLogger stores a logger in the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext retrieves a logger from context.
// Returns the global logger if none is stored.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns a logger with the interaction ID from ctx attached.
//
//	logging.Ctx(ctx).Info().Msg("search complete")
//	// {"level":"info","interaction_id":"abc12345","message":"search complete"}
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := LoggerFromContext(ctx)
	if id := InteractionIDFromContext(ctx); id != "" {
		logger = logger.With().Str("interaction_id", id).Logger()
	}
	return &logger
}
