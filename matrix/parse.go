// SPDX-License-Identifier: MIT

// Package matrix - textual cost-table ingestion.
//
// Format: N lines of whitespace-separated non-negative integers, line i
// (1-indexed) holding the i costs (i,0) .. (i,i-1). Blank lines are ignored;
// leading and trailing whitespace is insignificant. Only the total token count
// is enforced (N(N+1)/2), so a table wrapped differently still loads as long
// as its line count and token count agree.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a cost table from r.
//
// Errors:
//   - ErrFormat on an empty table, a non-integer token, or a wrong token count.
//   - ErrNegative on a negative cost.
//   - I/O errors from r, wrapped.
//
// Complexity: O(N²) time, O(N²) space.
func Parse(r io.Reader) (*Triangular, error) {
	var (
		sc     = bufio.NewScanner(r)
		values []int64
		lines  int
		lineNo int
	)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}
		lines++

		var tok string
		for _, tok = range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: token %q is not an integer: %w", lineNo, tok, ErrFormat)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read cost table: %w", err)
	}
	if lines == 0 {
		return nil, fmt.Errorf("empty cost table: %w", ErrFormat)
	}

	return FromValues(values, lines)
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*Triangular, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cost table: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}
