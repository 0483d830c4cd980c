// Package tsp - tabu search.
//
// Each iteration:
//  1. Reboot check: when the non-improvement streak exceeds RebootAfter the
//     run restarts. The plain variant always intensifies (resume from the best
//     tour) and clears the tabu list. The enhanced variant intensifies on every
//     IntensifyEvery-th reboot, keeping the list, and diversifies otherwise,
//     clearing it.
//  2. Every move not in the tabu list is scored; the cheapest is applied even
//     when it worsens the tour.
//  3. The enhanced variant records the new tour's edges in its frequency memory.
//  4. The move is pushed onto the tabu list; the best tour and streak update.
package tsp

import (
	"context"
	"fmt"
)

type tabuSearch struct {
	enhanced   bool
	list       *TabuList
	freq       *EdgeFrequency
	moves      []Move
	stagnation int
	reboots    int
}

func (s *tabuSearch) start(e *Engine) error {
	n := e.model.Nodes()
	s.moves = AllMoves(n)
	s.list = NewTabuList(e.params.TabuCapacity)
	if s.enhanced {
		freq, err := NewEdgeFrequency(n + 1)
		if err != nil {
			return err
		}
		s.freq = freq
	}

	return nil
}

func (s *tabuSearch) describe(rec *Record) {
	rec.Stagnation = s.stagnation
	rec.Reboots = s.reboots
	rec.TabuLen = s.list.Len()
}

// rebootKind decides the restart flavour for the upcoming reboot.
func (s *tabuSearch) rebootKind(every int) RebootKind {
	if !s.enhanced || (s.reboots+1)%every == 0 {
		return RebootIntensify
	}

	return RebootDiversify
}

func (s *tabuSearch) reboot(e *Engine) RebootKind {
	kind := s.rebootKind(e.params.IntensifyEvery)
	switch kind {
	case RebootIntensify:
		e.state.set(e.state.best.Clone(), e.state.bestCost)
		if !s.enhanced {
			s.list.Clear()
		}
	case RebootDiversify:
		t, cost := diversify(e.src, e.model, s.freq, e.state.best, e.params)
		e.state.set(t, cost)
		s.list.Clear()
	}
	s.reboots++
	s.stagnation = 0
	e.log.Debug("reboot", "kind", kind.String(), "reboots", s.reboots, "cost", e.state.cost)

	return kind
}

func (s *tabuSearch) step(ctx context.Context, e *Engine, rec *Record) error {
	rec.Reboot = RebootNone
	if s.stagnation > e.params.RebootAfter {
		rec.Reboot = s.reboot(e)
	}

	cand, ok, err := e.eval.Best(ctx, e.state.cur, e.state.cost, s.moves, s.list.Contains)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("tabu list holds %d of %d moves: %w", s.list.Len(), len(s.moves), ErrNoCandidate)
	}
	e.state.set(e.state.cur.Apply(cand.Move, e.eval.Kind()), cand.Cost)
	if s.enhanced {
		s.freq.Record(e.state.cur)
	}
	e.state.iteration++
	s.list.Push(cand.Move)

	rec.NewBest = e.state.promote()
	if rec.NewBest {
		s.stagnation = 0
	} else {
		s.stagnation++
	}
	rec.Move, rec.HasMove = cand.Move, true
	rec.CandidateCost = cand.Cost
	rec.Accepted = true
	s.describe(rec)

	return nil
}
