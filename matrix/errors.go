// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors, accessors and parsers MUST return these sentinels
// (optionally wrapped with coordinates or line numbers) and tests MUST check them
// via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with fmt.Errorf("ctx: %w", ErrX)
// to attach coordinates; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> reversed index -> out of range -> format -> negative value.

var (
	// ErrBadShape is returned when a requested table size is invalid (lines < 2).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrReversedIndex signals an access with col >= row. The diagonal is never
	// stored and the upper triangle is addressed through its mirror (row, col) with row > col.
	ErrReversedIndex = errors.New("matrix: column must be strictly below row")

	// ErrOutOfRange indicates that a row or column index is outside the stored triangle.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrFormat signals malformed textual input: a non-integer token, an empty
	// table, or a token count different from N(N+1)/2.
	ErrFormat = errors.New("matrix: malformed cost table")

	// ErrNegative signals a negative cost where only non-negative values are allowed.
	ErrNegative = errors.New("matrix: negative value")
)
