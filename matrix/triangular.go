// SPDX-License-Identifier: MIT

// Package matrix - Triangular storage (packed strict lower triangle) & safe accessors.
//
// Purpose:
//   - Keep the (N+1)×(N+1) symmetric cost table in a single flat arena.
//   - Make the index mapping an explicit, tested invariant (TriangularIndex).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep deterministic iteration (Triples walks rows, then columns, ascending).
//
// Complexity quicksheet:
//   - NewTriangular: O(L²/2) zero-init; At/Set/Inc: O(1); Triples: O(L²/2); Min/Max: O(L²/2).

package matrix

import (
	"fmt"
	"iter"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxInc = "Inc" // method tag used in error wrappers
)

// minLines is the smallest legal order: the depot plus one node.
const minLines = 2

// triangularErrorf wraps a sentinel with a uniform Triangular context and callsite indices.
func triangularErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Triangular.%s(%d,%d): %w", method, row, col, err)
}

// TriangularIndex maps a stored cell (row, col), col < row, to its arena offset.
//
// Invariant: rows are laid out one after another, row r holding r cells, so row r
// starts after 0+1+...+(r-1) = r(r-1)/2 cells and the cell sits col places further.
// The mapping is a bijection from {(r,c) : 0 ≤ c < r < L} onto [0, L(L-1)/2).
//
// No bounds are checked here; At/Set validate before calling.
//
// Complexity: O(1).
func TriangularIndex(row, col int) int {
	return row*(row-1)/2 + col
}

// Triangular is a symmetric table of order Lines() with no diagonal.
//   - lines is the order L of the logical square matrix (N+1 for N non-depot nodes).
//   - data holds L(L-1)/2 values in row-major lower-triangular order.
//
// A Triangular is immutable once built by FromValues/Parse unless the owner
// calls Set/Inc; the search engine never mutates the cost table.
type Triangular struct {
	lines int     // logical order L (rows 0..L-1; row 0 stores nothing)
	data  []int64 // packed strict lower triangle, len == L(L-1)/2
}

// Triple is one stored cell produced by Triples.
type Triple struct {
	Row   int
	Col   int
	Value int64
}

// NewTriangular creates a zero-filled table of the given order.
//
// Errors:
//   - ErrBadShape if lines < 2.
//
// Complexity: O(lines²/2) time and memory.
func NewTriangular(lines int) (*Triangular, error) {
	if lines < minLines {
		return nil, fmt.Errorf("NewTriangular(%d): %w", lines, ErrBadShape)
	}

	return &Triangular{
		lines: lines,
		data:  make([]int64, lines*(lines-1)/2),
	}, nil
}

// FromValues builds a table from n textual lines flattened into values, where
// line i (1-indexed) holds the i costs (i,0) .. (i,i-1).
//
// Contract:
//   - n ≥ 1 and len(values) == n(n+1)/2, else ErrFormat.
//   - every value is non-negative, else ErrNegative.
//
// The resulting table has Lines() == n+1.
//
// Complexity: O(n²).
func FromValues(values []int64, n int) (*Triangular, error) {
	if n < 1 {
		return nil, fmt.Errorf("FromValues: %d lines: %w", n, ErrFormat)
	}
	var want = n * (n + 1) / 2
	if len(values) != want {
		return nil, fmt.Errorf("FromValues: got %d values for %d lines, want %d: %w",
			len(values), n, want, ErrFormat)
	}

	var i int
	for i = 0; i < len(values); i++ {
		if values[i] < 0 {
			return nil, fmt.Errorf("FromValues: value #%d (%d): %w", i, values[i], ErrNegative)
		}
	}

	data := make([]int64, want)
	copy(data, values)

	return &Triangular{lines: n + 1, data: data}, nil
}

// Lines returns the logical order L (N+1). Valid rows are 1..L-1.
func (t *Triangular) Lines() int {
	return t.lines
}

// Nodes returns N, the number of non-depot nodes (Lines()-1).
func (t *Triangular) Nodes() int {
	return t.lines - 1
}

// Len returns the number of stored cells, L(L-1)/2.
func (t *Triangular) Len() int {
	return len(t.data)
}

// checkIndex validates (row, col) against the strict lower triangle.
// A reversed pair (col >= row) is reported before a range violation.
func (t *Triangular) checkIndex(method string, row, col int) error {
	if col >= row {
		return triangularErrorf(method, row, col, ErrReversedIndex)
	}
	if col < 0 || row >= t.lines {
		return triangularErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// At returns the cost stored at (row, col), col < row < Lines().
//
// Complexity: O(1).
func (t *Triangular) At(row, col int) (int64, error) {
	if err := t.checkIndex(ctxAt, row, col); err != nil {
		return 0, err
	}

	return t.data[TriangularIndex(row, col)], nil
}

// AtUnordered returns the cost of the unordered pair {u, v}, mirroring the
// upper triangle onto the stored one. u == v is a diagonal access and fails
// with ErrReversedIndex.
//
// Complexity: O(1).
func (t *Triangular) AtUnordered(u, v int) (int64, error) {
	if u < v {
		u, v = v, u
	}

	return t.At(u, v)
}

// Set assigns v at (row, col), col < row < Lines().
//
// Complexity: O(1).
func (t *Triangular) Set(row, col int, v int64) error {
	if err := t.checkIndex(ctxSet, row, col); err != nil {
		return err
	}
	t.data[TriangularIndex(row, col)] = v

	return nil
}

// Inc adds one to the cell (row, col) and returns the new value.
// Counting tables (edge frequencies) use it as their only mutator.
//
// Complexity: O(1).
func (t *Triangular) Inc(row, col int) (int64, error) {
	if err := t.checkIndex(ctxInc, row, col); err != nil {
		return 0, err
	}
	var idx = TriangularIndex(row, col)
	t.data[idx]++

	return t.data[idx], nil
}

// Triples yields every stored cell in row-major order:
// (1,0), (2,0), (2,1), (3,0), ... (L-1, L-2).
// Breaking out of the range loop stops the walk early.
//
// Complexity: O(L²/2) for a full walk, O(1) per element.
func (t *Triangular) Triples() iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		var (
			row, col int
			idx      int
		)
		for row = 1; row < t.lines; row++ {
			for col = 0; col < row; col++ {
				if !yield(Triple{Row: row, Col: col, Value: t.data[idx]}) {
					return
				}
				idx++
			}
		}
	}
}

// Min returns the smallest stored value.
//
// Complexity: O(L²/2).
func (t *Triangular) Min() int64 {
	var (
		m = t.data[0]
		i int
	)
	for i = 1; i < len(t.data); i++ {
		if t.data[i] < m {
			m = t.data[i]
		}
	}

	return m
}

// Max returns the largest stored value.
//
// Complexity: O(L²/2).
func (t *Triangular) Max() int64 {
	var (
		m = t.data[0]
		i int
	)
	for i = 1; i < len(t.data); i++ {
		if t.data[i] > m {
			m = t.data[i]
		}
	}

	return m
}

// Range returns Max()-Min(), the spread of stored values.
func (t *Triangular) Range() int64 {
	return t.Max() - t.Min()
}

// Values returns a copy of the packed arena in storage order.
func (t *Triangular) Values() []int64 {
	out := make([]int64, len(t.data))
	copy(out, t.data)

	return out
}

// Clone returns a deep copy.
//
// Complexity: O(L²/2).
func (t *Triangular) Clone() *Triangular {
	return &Triangular{lines: t.lines, data: t.Values()}
}

// String renders the table one row per line in the textual input format.
func (t *Triangular) String() string {
	var (
		sb       strings.Builder
		row, col int
	)
	for row = 1; row < t.lines; row++ {
		for col = 0; col < row; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", t.data[TriangularIndex(row, col)])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
