// WildMovies - Movie Search and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wildmovies

package main

import (
	"bufio"
	"bytes"
)

// maxQueryBytes is the longest search line kept. Titles are far shorter.
const maxQueryBytes = 1024

// queryLines is a bufio.SplitFunc like bufio.ScanLines, except that a line
// longer than maxQueryBytes is cut to that length and the rest of it is
// discarded, so pasted input never stops the scanner with bufio.ErrTooLong.
func queryLines() bufio.SplitFunc {
	discarding := false

	return func(data []byte, atEOF bool) (int, []byte, error) {
		if discarding {
			if i := bytes.IndexByte(data, '\n'); i >= 0 {
				discarding = false
				return i + 1, nil, nil
			}
			return len(data), nil, nil
		}

		advance, token, err := bufio.ScanLines(data, atEOF)
		if err != nil {
			return 0, nil, err
		}
		if advance == 0 && token == nil && len(data) >= maxQueryBytes {
			discarding = true
			return maxQueryBytes, data[:maxQueryBytes], nil
		}
		if len(token) > maxQueryBytes {
			token = token[:maxQueryBytes]
		}
		return advance, token, nil
	}
}
