// Package tsp - tour and move primitives.
//
// A Tour lists the N non-depot nodes in visiting order. The depot (node 0) is
// implicit at both ends, so the closed route is 0 → t[0] → … → t[N-1] → 0.
// Moves address tour POSITIONS, never node labels.
//
// Design:
//   - Tours are values: Apply returns a fresh slice and never mutates its receiver.
//   - Move descriptors are normalized so I > J; both move kinds share that set.
package tsp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tourlab/matrix"
)

// Tour is an ordering of nodes 1..N; position 0 follows the depot.
type Tour []int

// Clone returns an independent copy.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Equal reports element-wise equality.
func (t Tour) Equal(o Tour) bool {
	if len(t) != len(o) {
		return false
	}
	var i int
	for i = range t {
		if t[i] != o[i] {
			return false
		}
	}

	return true
}

// String renders the closed route, e.g. "0 2 1 3 0".
func (t Tour) String() string {
	var b strings.Builder
	b.WriteString("0")
	for _, v := range t {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteString(" 0")

	return b.String()
}

// Validate checks that t is a permutation of 1..n.
//
// Complexity: O(n) time, O(n) space.
func (t Tour) Validate(n int) error {
	if len(t) != n {
		return fmt.Errorf("length %d, want %d: %w", len(t), n, ErrInvalidTour)
	}
	seen := make([]bool, n+1)
	var i int
	for i = range t {
		v := t[i]
		if v < 1 || v > n {
			return fmt.Errorf("position %d holds %d: %w", i, v, ErrInvalidTour)
		}
		if seen[v] {
			return fmt.Errorf("node %d repeated: %w", v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// Apply returns the tour obtained by applying m with the given kind.
// Panics if m does not address two distinct positions of t.
//
// Complexity: O(n).
func (t Tour) Apply(m Move, kind MoveKind) Tour {
	if err := m.check(len(t)); err != nil {
		panic(err)
	}
	out := t.Clone()
	switch kind {
	case Exchange:
		out[m.I], out[m.J] = out[m.J], out[m.I]
	case Reversal:
		reverseSpan(out, m.J, m.I)
	default:
		panic(fmt.Errorf("tsp: apply %s: %w", kind, ErrInvalidParams))
	}

	return out
}

// reverseSpan reverses t[lo..hi] in place.
func reverseSpan(t Tour, lo, hi int) {
	for lo < hi {
		t[lo], t[hi] = t[hi], t[lo]
		lo++
		hi--
	}
}

// Move addresses two distinct tour positions with I > J.
type Move struct {
	I, J int
}

// NewMove normalizes an unordered pair of positions.
func NewMove(a, b int) Move {
	if a < b {
		a, b = b, a
	}

	return Move{I: a, J: b}
}

// String renders "(i,j)".
func (m Move) String() string { return "(" + strconv.Itoa(m.I) + "," + strconv.Itoa(m.J) + ")" }

// Index returns the position of m in the enumeration produced by AllMoves.
// The enumeration walks the same strict lower triangle as matrix.Triangular.
func (m Move) Index() int { return matrix.TriangularIndex(m.I, m.J) }

func (m Move) check(n int) error {
	if m.J < 0 || m.I <= m.J || m.I >= n {
		return fmt.Errorf("move %s over %d positions: %w", m, n, ErrInvalidMove)
	}

	return nil
}

// MoveCount returns the number of distinct moves over n positions: n(n-1)/2.
func MoveCount(n int) int { return n * (n - 1) / 2 }

// AllMoves enumerates every move over n positions: I ascending, then J ascending below I.
// The k-th element satisfies AllMoves(n)[k].Index() == k.
//
// Complexity: O(n²).
func AllMoves(n int) []Move {
	if n < 2 {
		return nil
	}
	out := make([]Move, 0, MoveCount(n))
	var i, j int
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			out = append(out, Move{I: i, J: j})
		}
	}

	return out
}

// AnchoredMoves enumerates the n-1 moves pairing anchor with every other
// position, partner positions ascending.
//
// Complexity: O(n).
func AnchoredMoves(n, anchor int) []Move {
	if n < 2 || anchor < 0 || anchor >= n {
		return nil
	}
	out := make([]Move, 0, n-1)
	var x int
	for x = 0; x < n; x++ {
		if x != anchor {
			out = append(out, NewMove(anchor, x))
		}
	}

	return out
}
