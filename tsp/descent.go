// Package tsp - first-improvement descent.
//
// Each iteration draws two positions, turns them into a move (bumping I past J
// when they coincide) and scans the full neighbourhood cyclically from that
// move's index. The first strictly improving move is applied. When none exists
// the tour is a local optimum: the record reports LocalOptimum and the tour is
// left unchanged.
package tsp

import "context"

type descent struct {
	moves []Move
}

func (d *descent) start(e *Engine) error {
	d.moves = AllMoves(e.model.Nodes())

	return nil
}

func (d *descent) describe(*Record) {}

// origin maps two position draws to a scan starting index.
func origin(a, b, n int) int {
	if a == b {
		return NewMove(max((a+1)%n, 1), 0).Index()
	}

	return NewMove(a, b).Index()
}

func (d *descent) step(ctx context.Context, e *Engine, rec *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var (
		n     = e.model.Nodes()
		first = origin(drawIndex(e.src, n), drawIndex(e.src, n), n)
		kind  = e.eval.Kind()
		cur   = e.state.cur
		cost  = e.state.cost
		k     int
	)
	e.state.iteration++
	for k = 0; k < len(d.moves); k++ {
		m := d.moves[(first+k)%len(d.moves)]
		c := cost + e.model.Delta(cur, m, kind)
		if c < cost {
			e.state.set(cur.Apply(m, kind), c)
			rec.Move, rec.HasMove = m, true
			rec.CandidateCost = c
			rec.Accepted = true
			rec.NewBest = e.state.promote()

			return nil
		}
	}
	rec.CandidateCost = cost
	rec.LocalOptimum = true

	return nil
}
