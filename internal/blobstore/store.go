// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

// Package blobstore reads the precomputed recommendation artifacts from a
// directory, memory or object storage. Subpackages s3 and minio provide the
// object storage implementations.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error that satisfies errors.Is(err, ErrNotFound).
var ErrNotFound = os.ErrNotExist

// Store opens named, immutable blobs for reading. Names are slash-separated
// paths relative to the store root.
type Store interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Locator is implemented by stores whose blobs are plain files. Readers that
// need a file path (DuckDB table functions) use it to skip a local copy.
type Locator interface {
	Path(name string) (string, bool)
}
