// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package config

import (
	"fmt"

	"github.com/tomtom215/wildmovies/internal/validation"
)

// Validate checks field constraints (struct tags) and then the cross-field
// rules that tags cannot express.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if err := c.validateArtifactSource(); err != nil {
		return err
	}

	if err := c.validateArtifactFormat(); err != nil {
		return err
	}

	return validateHTTPURL(c.Metadata.BaseURL, "METADATA_BASE_URL")
}

// validateArtifactSource checks the fields each source kind needs.
func (c *Config) validateArtifactSource() error {
	a := &c.Artifacts

	switch a.Source {
	case SourceLocal:
		if a.Dir == "" {
			return fmt.Errorf("ARTIFACTS_DIR is required when ARTIFACTS_SOURCE=local")
		}
	case SourceS3:
		if a.Bucket == "" {
			return fmt.Errorf("ARTIFACTS_BUCKET is required when ARTIFACTS_SOURCE=s3")
		}
	case SourceMinIO:
		if a.Bucket == "" {
			return fmt.Errorf("ARTIFACTS_BUCKET is required when ARTIFACTS_SOURCE=minio")
		}
		if a.Endpoint == "" {
			return fmt.Errorf("ARTIFACTS_ENDPOINT is required when ARTIFACTS_SOURCE=minio")
		}
		if err := validateEndpoint(a.Endpoint, "ARTIFACTS_ENDPOINT"); err != nil {
			return err
		}
		if (a.AccessKey == "") != (a.SecretKey == "") {
			return fmt.Errorf("ARTIFACTS_ACCESS_KEY and ARTIFACTS_SECRET_KEY must be set together")
		}
	}

	return nil
}

// validateArtifactFormat checks the object names each format needs.
func (c *Config) validateArtifactFormat() error {
	a := &c.Artifacts

	switch a.Format {
	case FormatBundle:
		if a.Bundle == "" {
			return fmt.Errorf("ARTIFACTS_BUNDLE is required when ARTIFACTS_FORMAT=bundle")
		}
	case FormatTabular:
		if a.Dataset == "" {
			return fmt.Errorf("ARTIFACTS_DATASET is required when ARTIFACTS_FORMAT=tabular")
		}
		if a.FeatureColumns == "" {
			return fmt.Errorf("ARTIFACTS_FEATURE_COLUMNS is required when ARTIFACTS_FORMAT=tabular")
		}
		if a.ActorPrefix != "" && a.ActorPrefix == a.GenrePrefix {
			return fmt.Errorf("ARTIFACTS_ACTOR_PREFIX and ARTIFACTS_GENRE_PREFIX must differ")
		}
	}

	return nil
}
