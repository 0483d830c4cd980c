// Package tsp - initial tour construction.
//
// Two builders are provided:
//   - RandomTour: N uniform draws from a RandomSource, collisions resolved by
//     probing forward (wrapping past N back to 1).
//   - GreedyTour: nearest-neighbour path from the depot over the triangular
//     cost table, ties broken by table order.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourlab/matrix"
)

// RandomTour builds a permutation of 1..n consuming exactly n draws from src.
// Each draw proposes node floor(r·n)+1; a taken node advances to
// max((node+1) mod (n+1), 1) until a free node is found.
//
// Complexity: O(n²) worst case, O(n) expected.
func RandomTour(src RandomSource, n int) Tour {
	if n <= 0 {
		return Tour{}
	}
	var (
		tour  = make(Tour, n)
		taken = make([]bool, n+1)
		i     int
	)
	for i = 0; i < n; i++ {
		node := drawIndex(src, n) + 1
		for taken[node] {
			node = max((node+1)%(n+1), 1)
		}
		taken[node] = true
		tour[i] = node
	}

	return tour
}

// GreedyTour starts at the depot and repeatedly moves to the cheapest edge
// leading to an unvisited non-depot node. Among equal costs the edge met first
// in row-major table order wins.
//
// Complexity: O(n³) over the lazy triple walk, O(n) extra space.
func GreedyTour(costs *matrix.Triangular) (Tour, error) {
	if costs == nil || costs.Nodes() < 1 {
		return nil, fmt.Errorf("greedy: %w", ErrInstanceTooSmall)
	}
	var (
		n       = costs.Nodes()
		tour    = make(Tour, 0, n)
		visited = make([]bool, n+1)
		from    int
	)
	visited[0] = true
	for len(tour) < n {
		var (
			next  = -1
			price int64
		)
		for tr := range costs.Triples() {
			var other int
			switch from {
			case tr.Row:
				other = tr.Col
			case tr.Col:
				other = tr.Row
			default:
				continue
			}
			if visited[other] {
				continue
			}
			if next < 0 || tr.Value < price {
				next, price = other, tr.Value
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("greedy: stuck at node %d: %w", from, ErrInvalidTour)
		}
		visited[next] = true
		tour = append(tour, next)
		from = next
	}

	return tour, nil
}
