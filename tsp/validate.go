// Package tsp - parameter validation.
//
// ValidateParams rejects parameter sets that would make a run meaningless or
// stall: temperatures that do not decay, cooldown thresholds of zero, or a
// tabu list able to hold every move of the neighbourhood.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - Every failure wraps ErrInvalidParams (or ErrUnknownAlgo) with the field name.
package tsp

import (
	"fmt"
	"math"
)

func invalid(field string, v any, want string) error {
	return fmt.Errorf("%s=%v, want %s: %w", field, v, want, ErrInvalidParams)
}

// ValidateParams checks p for an instance with n non-depot nodes.
//
// Complexity: O(1).
func ValidateParams(p Params, n int) error {
	if n < 2 {
		return fmt.Errorf("%d nodes: %w", n, ErrInstanceTooSmall)
	}
	if p.Algo < Annealing || p.Algo > Descent {
		return fmt.Errorf("%s: %w", p.Algo, ErrUnknownAlgo)
	}
	if p.Moves != Exchange && p.Moves != Reversal {
		return invalid("Moves", p.Moves, "exchange or reversal")
	}
	if p.Start != StartRandom && p.Start != StartGreedy {
		return invalid("Start", p.Start, "random or greedy")
	}
	if p.Workers < 0 {
		return invalid("Workers", p.Workers, "≥ 0")
	}

	switch p.Algo {
	case Annealing:
		return validateAnnealing(p)
	case Tabu, EnhancedTabu:
		return validateTabu(p, n)
	}

	return nil
}

func validateAnnealing(p Params) error {
	if !(p.Phi > 0 && p.Phi < 1) {
		return invalid("Phi", p.Phi, "0 < φ < 1")
	}
	if !(p.Mu > 0) || math.IsInf(p.Mu, 0) {
		return invalid("Mu", p.Mu, "finite μ > 0")
	}
	if p.CooldownTested < 1 {
		return invalid("CooldownTested", p.CooldownTested, "≥ 1")
	}
	if p.CooldownAccepted < 1 {
		return invalid("CooldownAccepted", p.CooldownAccepted, "≥ 1")
	}

	return nil
}

func validateTabu(p Params, n int) error {
	moves := MoveCount(n)
	if p.TabuCapacity < 1 || p.TabuCapacity >= moves {
		return invalid("TabuCapacity", p.TabuCapacity, fmt.Sprintf("1..%d for %d nodes", moves-1, n))
	}
	if p.RebootAfter < 0 {
		return invalid("RebootAfter", p.RebootAfter, "≥ 0")
	}
	if p.Algo != EnhancedTabu {
		return nil
	}
	if p.IntensifyEvery < 1 {
		return invalid("IntensifyEvery", p.IntensifyEvery, "≥ 1")
	}
	if p.PerturbTries < 1 {
		return invalid("PerturbTries", p.PerturbTries, "≥ 1")
	}
	if !(p.PerturbFraction >= 0 && p.PerturbFraction <= 1) {
		return invalid("PerturbFraction", p.PerturbFraction, "0 ≤ f ≤ 1")
	}
	if !(p.RepetitionWeight >= 0) || math.IsInf(p.RepetitionWeight, 0) {
		return invalid("RepetitionWeight", p.RepetitionWeight, "finite w ≥ 0")
	}

	return nil
}
