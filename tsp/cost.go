// Package tsp - cost model over a triangular cost table.
//
// CostModel computes full closed-route costs and O(1) deltas for both move
// kinds. Deltas are exact: for every tour t, move m and kind k,
//
//	TourCost(t.Apply(m, k)) == TourCost(t) + Delta(t, m, k).
//
// Design:
//   - Costs are int64; no rounding is involved.
//   - The model is read-only after construction and safe for concurrent use.
//   - An index failure inside a lookup is a programming error (tours are
//     validated on entry), so edge panics instead of returning an error.
//
// Complexity:
//   - TourCost O(n), Delta O(1).
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourlab/matrix"
)

// CostModel wraps an immutable cost table.
type CostModel struct {
	costs *matrix.Triangular
	n     int
}

// NewCostModel binds a cost table. It needs at least two non-depot nodes.
func NewCostModel(costs *matrix.Triangular) (*CostModel, error) {
	if costs == nil {
		return nil, fmt.Errorf("nil cost table: %w", ErrInstanceTooSmall)
	}
	n := costs.Nodes()
	if n < 2 {
		return nil, fmt.Errorf("%d nodes: %w", n, ErrInstanceTooSmall)
	}

	return &CostModel{costs: costs, n: n}, nil
}

// Nodes returns N.
func (c *CostModel) Nodes() int { return c.n }

// Table exposes the underlying cost table (read-only by convention).
func (c *CostModel) Table() *matrix.Triangular { return c.costs }

// Range returns max - min over all stored costs.
func (c *CostModel) Range() int64 { return c.costs.Range() }

// edge returns d(u, v) for u != v.
func (c *CostModel) edge(u, v int) int64 {
	d, err := c.costs.AtUnordered(u, v)
	if err != nil {
		panic(fmt.Errorf("tsp: edge (%d,%d): %w", u, v, err))
	}

	return d
}

// Edge returns d(u, v), or an error when the pair is not a stored edge.
func (c *CostModel) Edge(u, v int) (int64, error) {
	return c.costs.AtUnordered(u, v)
}

// TourCost returns the closed-route cost d(0,t0) + Σ d(t_i,t_{i+1}) + d(t_{n-1},0).
//
// Complexity: O(n).
func (c *CostModel) TourCost(t Tour) int64 {
	if len(t) == 0 {
		return 0
	}
	var (
		total int64
		i     int
	)
	total = c.edge(0, t[0])
	for i = 1; i < len(t); i++ {
		total += c.edge(t[i-1], t[i])
	}
	total += c.edge(t[len(t)-1], 0)

	return total
}

// at returns the node at position p, or the depot outside the tour.
func at(t Tour, p int) int {
	if p < 0 || p >= len(t) {
		return 0
	}

	return t[p]
}

// Delta returns TourCost(t.Apply(m, kind)) - TourCost(t) without building the new tour.
// m must satisfy 0 ≤ m.J < m.I < len(t).
//
// Complexity: O(1).
func (c *CostModel) Delta(t Tour, m Move, kind MoveKind) int64 {
	if kind == Reversal || m.I == m.J+1 {
		// Adjacent exchange and reversal rewire the same two boundary edges.
		prev, first := at(t, m.J-1), t[m.J]
		last, next := t[m.I], at(t, m.I+1)

		return c.edge(prev, last) + c.edge(first, next) -
			c.edge(prev, first) - c.edge(last, next)
	}

	a, b := t[m.J], t[m.I]
	pa, na := at(t, m.J-1), t[m.J+1]
	pb, nb := t[m.I-1], at(t, m.I+1)

	removed := c.edge(pa, a) + c.edge(a, na) + c.edge(pb, b) + c.edge(b, nb)
	added := c.edge(pa, b) + c.edge(b, na) + c.edge(pb, a) + c.edge(a, nb)

	return added - removed
}
