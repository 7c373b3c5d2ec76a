// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package artifact

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression suffixes recognized on artifact names.
const (
	suffixZstd = ".zst"
	suffixLZ4  = ".lz4"
)

// stripCompression returns name without a recognized compression suffix.
func stripCompression(name string) string {
	lower := strings.ToLower(name)
	for _, s := range []string{suffixZstd, suffixLZ4} {
		if strings.HasSuffix(lower, s) {
			return name[:len(name)-len(s)]
		}
	}
	return name
}

// isCompressed reports whether name carries a compression suffix.
func isCompressed(name string) bool {
	return stripCompression(name) != name
}

// decompress wraps rc with the decoder selected by name's suffix. Closing the
// result closes rc.
func decompress(name string, rc io.ReadCloser) (io.ReadCloser, error) {
	switch lower := strings.ToLower(name); {
	case strings.HasSuffix(lower, suffixZstd):
		dec, err := zstd.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return &decodedReader{Reader: dec, close: func() error {
			dec.Close()
			return rc.Close()
		}}, nil
	case strings.HasSuffix(lower, suffixLZ4):
		return &decodedReader{Reader: lz4.NewReader(rc), close: rc.Close}, nil
	default:
		return rc, nil
	}
}

type decodedReader struct {
	io.Reader
	close func() error
}

func (d *decodedReader) Close() error {
	return d.close()
}
