// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

// Package testinfra provides container-backed infrastructure for integration
// tests, built on testcontainers-go.
//
// # MinIO Container
//
// MinIOContainer runs a real MinIO server so the object-store artifact
// sources are tested against the S3 API instead of a mock:
//
//	func TestLoadFromMinIO(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//
//	    m, err := testinfra.NewMinIOContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, m)
//
//	    if err := m.Seed(ctx, "wildmovies", map[string][]byte{"artifacts/bundle.json": data}); err != nil {
//	        t.Fatal(err)
//	    }
//	    // point config.ArtifactsConfig at m.Endpoint
//	}
//
// # Running
//
// Files in this package carry the integration build tag:
//
//	go test -tags integration ./...
//
// Tests skip when Docker is unavailable. The first run pulls the MinIO image.
package testinfra
