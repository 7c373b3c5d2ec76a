// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tomtom215/wildmovies/internal/blobstore"
	"github.com/tomtom215/wildmovies/internal/blobstore/minio"
	"github.com/tomtom215/wildmovies/internal/blobstore/s3"
	"github.com/tomtom215/wildmovies/internal/config"
)

// OpenStore returns the blob store selected by cfg.Source.
//
//nolint:gocritic // hugeParam: cfg passed by value for immutability
func OpenStore(ctx context.Context, cfg config.ArtifactsConfig) (blobstore.Store, error) {
	switch cfg.Source {
	case config.SourceLocal:
		return blobstore.NewLocalStore(cfg.Dir), nil
	case config.SourceS3:
		return s3.NewFromDefaultConfig(ctx, cfg.Region, cfg.Bucket, cfg.Prefix)
	case config.SourceMinIO:
		return minio.Dial(minio.Options{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Region:    cfg.Region,
		}, cfg.Bucket, cfg.Prefix)
	default:
		return nil, fmt.Errorf("unknown artifact source %q", cfg.Source)
	}
}

// openBlob opens name and wraps it with the decompressor its suffix selects.
func openBlob(ctx context.Context, store blobstore.Store, name string) (io.ReadCloser, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	dec, err := decompress(name, rc)
	if err != nil {
		rc.Close() //nolint:errcheck // best-effort cleanup on error path
		return nil, err
	}
	return dec, nil
}

// localPath returns a file path holding the decompressed contents of name.
// Uncompressed blobs of a file-backed store are used in place; anything else
// is copied into dir. The returned cleanup removes any copy.
func localPath(ctx context.Context, store blobstore.Store, name, dir string) (string, func(), error) {
	if loc, ok := store.(blobstore.Locator); ok && !isCompressed(name) {
		if p, ok := loc.Path(name); ok {
			if _, err := os.Stat(p); err != nil {
				return "", nil, err
			}
			return p, func() {}, nil
		}
	}

	rc, err := openBlob(ctx, store, name)
	if err != nil {
		return "", nil, err
	}
	defer rc.Close()

	f, err := os.CreateTemp(dir, "*-"+filepath.Base(stripCompression(name)))
	if err != nil {
		return "", nil, fmt.Errorf("create local copy: %w", err)
	}
	cleanup := func() { os.Remove(f.Name()) } //nolint:errcheck // best-effort temp file removal

	if _, err := io.Copy(f, rc); err != nil {
		f.Close() //nolint:errcheck // best-effort cleanup on error path
		cleanup()
		return "", nil, fmt.Errorf("copy %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close local copy: %w", err)
	}
	return f.Name(), cleanup, nil
}
