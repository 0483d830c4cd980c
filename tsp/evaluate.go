// Package tsp - candidate evaluation.
//
// Evaluator scores a list of moves against the current tour and returns the
// cheapest admissible one. Evaluation is a read-only phase: the tour, the cost
// model and the tabu filter are only read, so large neighbourhoods are split
// into contiguous chunks scored by an errgroup of workers.
//
// Determinism:
//   - Each chunk keeps its first strictly-cheapest candidate.
//   - Chunks are reduced in order, again keeping strictly-cheaper only.
//   - The result is therefore the lowest-index minimum, identical to a
//     sequential scan regardless of the worker count.
package tsp

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the neighbourhood size below which evaluation stays sequential.
const parallelThreshold = 512

// Candidate is a scored move.
type Candidate struct {
	Move  Move  // the move
	Index int   // position in the evaluated list
	Cost  int64 // cost of the tour after applying Move
}

// Evaluator scores move lists for one cost model and move kind.
type Evaluator struct {
	model   *CostModel
	kind    MoveKind
	workers int
}

// NewEvaluator returns an evaluator; workers ≤ 1 forces sequential scans.
func NewEvaluator(model *CostModel, kind MoveKind, workers int) *Evaluator {
	if workers < 1 {
		workers = 1
	}

	return &Evaluator{model: model, kind: kind, workers: workers}
}

// Kind returns the move kind being scored.
func (e *Evaluator) Kind() MoveKind { return e.kind }

// Best returns the cheapest move of moves whose skip(m) is false.
// skip may be nil. ok is false when every move was skipped.
//
// Complexity: O(len(moves)) work, O(len(moves)/workers) wall time.
func (e *Evaluator) Best(ctx context.Context, t Tour, cost int64, moves []Move, skip func(Move) bool) (Candidate, bool, error) {
	if e.workers == 1 || len(moves) < parallelThreshold {
		if err := ctx.Err(); err != nil {
			return Candidate{}, false, err
		}
		c, ok := e.scan(t, cost, moves, 0, len(moves), skip)

		return c, ok, nil
	}

	var (
		chunks = e.workers
		size   = (len(moves) + chunks - 1) / chunks
		found  = make([]Candidate, chunks)
		oks    = make([]bool, chunks)
	)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < chunks; w++ {
		lo := w * size
		hi := min(lo+size, len(moves))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found[w], oks[w] = e.scan(t, cost, moves, lo, hi, skip)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Candidate{}, false, err
	}

	var (
		best Candidate
		ok   bool
	)
	for w := range found {
		if oks[w] && (!ok || found[w].Cost < best.Cost) {
			best, ok = found[w], true
		}
	}

	return best, ok, nil
}

// scan is the sequential kernel over moves[lo:hi].
func (e *Evaluator) scan(t Tour, cost int64, moves []Move, lo, hi int, skip func(Move) bool) (Candidate, bool) {
	var (
		best Candidate
		ok   bool
		i    int
	)
	for i = lo; i < hi; i++ {
		m := moves[i]
		if skip != nil && skip(m) {
			continue
		}
		c := cost + e.model.Delta(t, m, e.kind)
		if !ok || c < best.Cost {
			best, ok = Candidate{Move: m, Index: i, Cost: c}, true
		}
	}

	return best, ok
}
