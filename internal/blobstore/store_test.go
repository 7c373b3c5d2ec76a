// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "v1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "v1", "bundle.json"), []byte(`{"ids":[]}`), 0o600))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	t.Run("Open", func(t *testing.T) {
		rc, err := store.Open(ctx, "v1/bundle.json")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, `{"ids":[]}`, string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.json")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Escape", func(t *testing.T) {
		_, err := store.Open(ctx, "../outside.json")
		assert.Error(t, err)

		_, ok := store.Path("/etc/passwd")
		assert.False(t, ok)
	})

	t.Run("Path", func(t *testing.T) {
		p, ok := store.Path("v1/bundle.json")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(tmpDir, "v1", "bundle.json"), p)

		var _ Locator = store
	})

	t.Run("CanceledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Open(cctx, "v1/bundle.json")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("feature\nactor_a\n")
	store.Put("feature_columns.csv", data)
	data[0] = 'X'

	rc, err := store.Open(ctx, "feature_columns.csv")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "feature\nactor_a\n", string(got))

	_, err = store.Open(ctx, "scaler.json")
	assert.ErrorIs(t, err, ErrNotFound)

	store.Put("a.json", nil)
	assert.Equal(t, []string{"a.json", "feature_columns.csv"}, store.Names())
}
