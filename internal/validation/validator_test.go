// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type sourceConfig struct {
	Kind    string  `koanf:"kind" validate:"required,oneof=local memory s3 minio"`
	Bundle  string  `koanf:"bundle" validate:"required,blobname"`
	BaseURL string  `koanf:"base_url" validate:"omitempty,http_url"`
	Size    int     `koanf:"size" validate:"min=1,max=50"`
	Ratio   float64 `koanf:"ratio" validate:"gt=0,lte=1"`
}

func validSource() sourceConfig {
	return sourceConfig{
		Kind:    "local",
		Bundle:  "models/nn_model_light.json.zst",
		BaseURL: "https://api.imdbapi.dev",
		Size:    3,
		Ratio:   0.6,
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	cfg := validSource()
	if err := ValidateStruct(&cfg); err != nil {
		t.Errorf("ValidateStruct() error = %v, want nil", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*sourceConfig)
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "unknown kind",
			mutate:    func(c *sourceConfig) { c.Kind = "ftp" },
			wantField: "kind",
			wantTag:   "oneof",
			wantMsg:   "kind must be one of: local memory s3 minio",
		},
		{
			name:      "missing bundle",
			mutate:    func(c *sourceConfig) { c.Bundle = "" },
			wantField: "bundle",
			wantTag:   "required",
			wantMsg:   "bundle is required",
		},
		{
			name:      "bundle escapes prefix",
			mutate:    func(c *sourceConfig) { c.Bundle = "../secrets.json" },
			wantField: "bundle",
			wantTag:   "blobname",
		},
		{
			name:      "absolute bundle",
			mutate:    func(c *sourceConfig) { c.Bundle = "/etc/passwd" },
			wantField: "bundle",
			wantTag:   "blobname",
		},
		{
			name:      "bad url scheme",
			mutate:    func(c *sourceConfig) { c.BaseURL = "ftp://example.com" },
			wantField: "base_url",
			wantTag:   "http_url",
		},
		{
			name:      "size too large",
			mutate:    func(c *sourceConfig) { c.Size = 51 },
			wantField: "size",
			wantTag:   "max",
			wantMsg:   "size must be at most 50",
		},
		{
			name:      "zero ratio",
			mutate:    func(c *sourceConfig) { c.Ratio = 0 },
			wantField: "ratio",
			wantTag:   "gt",
			wantMsg:   "ratio must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validSource()
			tt.mutate(&cfg)

			err := ValidateStruct(&cfg)
			if err == nil {
				t.Fatal("ValidateStruct() error = nil, want error")
			}

			var sve *StructValidationError
			if !errors.As(err, &sve) {
				t.Fatalf("error type = %T, want *StructValidationError", err)
			}
			if len(sve.Errors()) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1 (%v)", len(sve.Errors()), err)
			}

			fe := sve.Errors()[0]
			if fe.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", fe.Field(), tt.wantField)
			}
			if fe.Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", fe.Tag(), tt.wantTag)
			}
			if tt.wantMsg != "" && fe.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", fe.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	t.Parallel()

	cfg := validSource()
	cfg.Kind = ""
	cfg.Size = 0

	err := ValidateStruct(&cfg)
	if err == nil {
		t.Fatal("ValidateStruct() error = nil, want error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "kind is required") || !strings.Contains(msg, "size must be at least 1") {
		t.Errorf("Error() = %q, want both field messages", msg)
	}
}

func TestValidateBlobName(t *testing.T) {
	t.Parallel()

	type holder struct {
		Name string `validate:"blobname"`
	}

	tests := []struct {
		name  string
		valid bool
	}{
		{"", true},
		{"bundle.json", true},
		{"models/v2/bundle.json.lz4", true},
		{"models//bundle.json", false},
		{"./bundle.json", false},
		{"models/", false},
		{"a/../b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(&holder{Name: tt.name})
			if (err == nil) != tt.valid {
				t.Errorf("ValidateStruct(%q) error = %v, want valid=%v", tt.name, err, tt.valid)
			}
		})
	}
}
