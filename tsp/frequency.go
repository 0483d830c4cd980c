// Package tsp - edge-frequency memory for diversification.
//
// EdgeFrequency counts how often each undirected edge (depot edges included)
// appeared in the current tour after an iteration. The counts live in a
// matrix.Triangular of the same order as the cost table. The running maximum
// starts at 1 so normalised penalties are always finite.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourlab/matrix"
)

// EdgeFrequency is the long-term memory of the enhanced tabu search.
type EdgeFrequency struct {
	counts *matrix.Triangular
	max    int64
}

// NewEdgeFrequency returns zeroed counts for a table of the given order (N+1).
func NewEdgeFrequency(lines int) (*EdgeFrequency, error) {
	counts, err := matrix.NewTriangular(lines)
	if err != nil {
		return nil, fmt.Errorf("tsp: edge frequency: %w", err)
	}

	return &EdgeFrequency{counts: counts, max: 1}, nil
}

// bump increments the count of {u, v}.
func (f *EdgeFrequency) bump(u, v int) {
	if u < v {
		u, v = v, u
	}
	c, err := f.counts.Inc(u, v)
	if err != nil {
		panic(fmt.Errorf("tsp: edge frequency (%d,%d): %w", u, v, err))
	}
	if c > f.max {
		f.max = c
	}
}

// Record counts every edge of the closed route of t.
//
// Complexity: O(n).
func (f *EdgeFrequency) Record(t Tour) {
	if len(t) == 0 {
		return
	}
	f.bump(0, t[0])
	var i int
	for i = 1; i < len(t); i++ {
		f.bump(t[i-1], t[i])
	}
	f.bump(t[len(t)-1], 0)
}

// Count returns how many times {u, v} was recorded.
func (f *EdgeFrequency) Count(u, v int) int64 {
	c, err := f.counts.AtUnordered(u, v)
	if err != nil {
		return 0
	}

	return c
}

// Max returns the running maximum count (≥ 1).
func (f *EdgeFrequency) Max() int64 { return f.max }

// Penalty returns the normalised frequency of the closed route of t:
// Σ count(e) / max over its edges.
//
// Complexity: O(n).
func (f *EdgeFrequency) Penalty(t Tour) float64 {
	if len(t) == 0 {
		return 0
	}
	var (
		sum int64
		i   int
	)
	sum = f.Count(0, t[0])
	for i = 1; i < len(t); i++ {
		sum += f.Count(t[i-1], t[i])
	}
	sum += f.Count(t[len(t)-1], 0)

	return float64(sum) / float64(f.max)
}
