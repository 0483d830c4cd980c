// Package tsp - simulated annealing.
//
// Each iteration:
//  1. Cooldown check: once Tested ≥ CooldownTested or Accepted ≥
//     CooldownAccepted, both counters reset, k increments and T = T0/(1+k).
//  2. One draw picks an anchor position a = floor(r·N); the N-1 reversals
//     pairing a with every other position are scored and the cheapest
//     (lowest index on ties) becomes the candidate.
//  3. A second draw accepts it when r < 1 for an improving candidate, or
//     r < exp(-Δ/T) otherwise.
//
// T0 = (-μ / ln φ) · cost(initial tour): a candidate μ·cost worse than the
// start is accepted with probability φ at the start of the run.
package tsp

import (
	"context"
	"math"
)

type annealing struct {
	t0        float64
	temp      float64
	cooldowns int
	tested    int
	accepted  int
}

func (a *annealing) start(e *Engine) error {
	a.t0 = InitialTemperature(e.params.Phi, e.params.Mu, e.state.cost)
	a.temp = a.t0

	return nil
}

// describe reports p=1 for the initial record; step overwrites it afterwards.
func (a *annealing) describe(rec *Record) {
	rec.Temperature = a.temp
	rec.Cooldowns = a.cooldowns
	rec.Tested = a.tested
	rec.AcceptedRun = a.accepted
	rec.Probability = 1
}

func (a *annealing) step(ctx context.Context, e *Engine, rec *Record) error {
	p := e.params
	if a.tested >= p.CooldownTested || a.accepted >= p.CooldownAccepted {
		a.tested, a.accepted = 0, 0
		a.cooldowns++
		a.temp = a.t0 / float64(1+a.cooldowns)
		rec.Cooled = true
		e.log.Debug("cooldown", "k", a.cooldowns, "temperature", a.temp)
	}

	n := e.model.Nodes()
	anchor := drawIndex(e.src, n)
	cand, ok, err := e.eval.Best(ctx, e.state.cur, e.state.cost, AnchoredMoves(n, anchor), nil)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoCandidate
	}
	e.state.iteration++

	delta := cand.Cost - e.state.cost
	prob := AcceptanceProbability(delta, a.temp)
	accept := e.src.Next() < prob
	if accept {
		e.state.set(e.state.cur.Apply(cand.Move, Reversal), cand.Cost)
		a.accepted++
	}
	a.tested++

	rec.Move, rec.HasMove = cand.Move, true
	rec.CandidateCost = cand.Cost
	rec.Accepted = accept
	rec.NewBest = e.state.promote()
	a.describe(rec)
	rec.Delta = delta
	rec.Probability = prob

	return nil
}

// InitialTemperature returns T0 = (-mu / ln phi) · cost.
func InitialTemperature(phi, mu float64, cost int64) float64 {
	return -mu / math.Log(phi) * float64(cost)
}

// AcceptanceProbability returns 1 for an improving delta and exp(-delta/temp)
// otherwise. A non-positive temperature accepts only non-worsening moves.
func AcceptanceProbability(delta int64, temp float64) float64 {
	switch {
	case delta < 0:
		return 1
	case temp > 0:
		return math.Exp(-float64(delta) / temp)
	case delta == 0:
		return 1
	default:
		return 0
	}
}
