// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

//go:build integration

package minio

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wildmovies/internal/blobstore"
	"github.com/tomtom215/wildmovies/internal/testinfra"
)

func TestStore_Integration(t *testing.T) {
	testinfra.SkipIfNoDocker(t)
	ctx := context.Background()

	m, err := testinfra.NewMinIOContainer(ctx)
	require.NoError(t, err)
	defer testinfra.CleanupContainer(t, ctx, m)

	data := []byte(`{"ids":["tt0133093"]}`)
	require.NoError(t, m.Seed(ctx, "wildmovies", map[string][]byte{"artifacts/bundle.json": data}))

	store, err := Dial(Options{
		Endpoint:  m.Endpoint,
		AccessKey: m.AccessKey,
		SecretKey: m.SecretKey,
	}, "wildmovies", "artifacts/")
	require.NoError(t, err)

	rc, err := store.Open(ctx, "bundle.json")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, data, got)

	_, err = store.Open(ctx, "missing.json")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
