package tsp

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors. Every message is prefixed with "tsp:"; detection sites wrap
// them with fmt.Errorf("ctx: %w", ErrX) and callers match with errors.Is.
var (
	// ErrInstanceTooSmall is returned when the cost table has fewer than two non-depot nodes.
	ErrInstanceTooSmall = errors.New("tsp: instance needs at least two nodes")

	// ErrInvalidParams is returned when a search parameter is outside its legal range.
	ErrInvalidParams = errors.New("tsp: invalid search parameters")

	// ErrUnknownAlgo is returned when an algorithm name or value is not recognised.
	ErrUnknownAlgo = errors.New("tsp: unknown algorithm")

	// ErrInvalidTour is returned when a tour is not a permutation of 1..N.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of 1..N")

	// ErrInvalidMove is returned when a move does not address two distinct tour positions.
	ErrInvalidMove = errors.New("tsp: move out of range")

	// ErrEmptyReplay is returned when a replay random source has no values.
	ErrEmptyReplay = errors.New("tsp: replay source is empty")

	// ErrReplayFormat is returned when a replay token is not a floating-point number.
	ErrReplayFormat = errors.New("tsp: replay token is not a number")

	// ErrReplayRange is returned when a replay value lies outside [0,1).
	ErrReplayRange = errors.New("tsp: replay value outside [0,1)")

	// ErrNoCandidate is returned when every candidate move is filtered out.
	ErrNoCandidate = errors.New("tsp: no admissible candidate move")
)

// Algo selects the search strategy driven by an Engine.
type Algo int

const (
	// Annealing is simulated annealing over anchored segment reversals.
	Annealing Algo = iota
	// Tabu is the plain tabu search: exchange moves, reboots always restore the best tour.
	Tabu
	// EnhancedTabu adds edge-frequency diversification and greedy construction.
	EnhancedTabu
	// Descent is first-improvement hill climbing over random-start exchange scans.
	Descent
)

var algoNames = [...]string{
	Annealing:    "annealing",
	Tabu:         "tabu",
	EnhancedTabu: "tabu-enhanced",
	Descent:      "descent",
}

// String returns the canonical lower-case name.
func (a Algo) String() string {
	if a < 0 || int(a) >= len(algoNames) {
		return fmt.Sprintf("Algo(%d)", int(a))
	}

	return algoNames[a]
}

// ParseAlgo maps a canonical name back to its Algo.
func ParseAlgo(s string) (Algo, error) {
	var i int
	for i = range algoNames {
		if algoNames[i] == s {
			return Algo(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgo)
}

// MoveKind selects how a move descriptor transforms a tour.
type MoveKind int

const (
	// Exchange swaps the nodes at positions I and J.
	Exchange MoveKind = iota
	// Reversal reverses positions J..I inclusive (a 2-opt edge exchange).
	Reversal
)

// String returns the canonical lower-case name.
func (k MoveKind) String() string {
	switch k {
	case Exchange:
		return "exchange"
	case Reversal:
		return "reversal"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

// ParseMoveKind maps "exchange" / "reversal" to a MoveKind.
func ParseMoveKind(s string) (MoveKind, error) {
	switch s {
	case "exchange":
		return Exchange, nil
	case "reversal":
		return Reversal, nil
	default:
		return 0, fmt.Errorf("move kind %q: %w", s, ErrInvalidParams)
	}
}

// StartKind selects how the initial tour is built.
type StartKind int

const (
	// StartRandom draws a uniform permutation, resolving collisions by linear probing.
	StartRandom StartKind = iota
	// StartGreedy extends a path from the depot along the cheapest unused edge.
	StartGreedy
)

// String returns the canonical lower-case name.
func (s StartKind) String() string {
	switch s {
	case StartRandom:
		return "random"
	case StartGreedy:
		return "greedy"
	default:
		return fmt.Sprintf("StartKind(%d)", int(s))
	}
}

// ParseStartKind maps "random" / "greedy" to a StartKind.
func ParseStartKind(s string) (StartKind, error) {
	switch s {
	case "random":
		return StartRandom, nil
	case "greedy":
		return StartGreedy, nil
	default:
		return 0, fmt.Errorf("start %q: %w", s, ErrInvalidParams)
	}
}

// RebootKind tells which restart, if any, preceded an iteration.
type RebootKind int

const (
	// RebootNone means the iteration continued from the previous tour.
	RebootNone RebootKind = iota
	// RebootIntensify means the current tour was reset to the best-known tour.
	RebootIntensify
	// RebootDiversify means the current tour was replaced by a frequency-penalised perturbation.
	RebootDiversify
)

// String returns the canonical lower-case name.
func (r RebootKind) String() string {
	switch r {
	case RebootNone:
		return "none"
	case RebootIntensify:
		return "intensify"
	case RebootDiversify:
		return "diversify"
	default:
		return fmt.Sprintf("RebootKind(%d)", int(r))
	}
}

// Defaults shared by the presets. Values come from long-standing course settings
// for 10 000-iteration runs on 10-100 node instances.
const (
	DefaultIterations       = 10000
	DefaultPhi              = 0.7
	DefaultMu               = 0.01
	DefaultCooldownTested   = 120
	DefaultCooldownAccepted = 40
	DefaultTabuCapacity     = 100
	DefaultEnhancedCapacity = 30
	DefaultRebootAfter      = 99
	DefaultIntensifyEvery   = 10
	DefaultPerturbTries     = 1000
	DefaultPerturbFraction  = 0.25
	DefaultRepetitionWeight = 1.0
)

// Params holds every engine-facing knob. Fields that do not apply to the
// selected Algo are ignored (but still validated when set to nonsense).
type Params struct {
	Algo  Algo      // strategy
	Moves MoveKind  // neighbourhood move kind (annealing always uses Reversal)
	Start StartKind // initial tour construction

	// Simulated annealing.
	Phi              float64 // 0 < Phi < 1; with Mu ties T0 to the initial cost
	Mu               float64 // Mu > 0
	CooldownTested   int     // cooldown after this many tested candidates
	CooldownAccepted int     // ... or this many accepted candidates

	// Tabu search.
	TabuCapacity     int     // FIFO capacity of the tabu list
	RebootAfter      int     // reboot once the non-improvement streak exceeds this
	IntensifyEvery   int     // every IntensifyEvery-th reboot intensifies (enhanced variant)
	PerturbTries     int     // diversification candidates per reboot
	PerturbFraction  float64 // swaps per candidate as a fraction of N
	RepetitionWeight float64 // scale of the edge-frequency penalty

	// Workers bounds parallel candidate evaluation; 0 means GOMAXPROCS.
	Workers int
}

// DefaultParams returns the preset for the given algorithm.
func DefaultParams(a Algo) Params {
	p := Params{
		Algo:             a,
		Moves:            Exchange,
		Start:            StartRandom,
		Phi:              DefaultPhi,
		Mu:               DefaultMu,
		CooldownTested:   DefaultCooldownTested,
		CooldownAccepted: DefaultCooldownAccepted,
		TabuCapacity:     DefaultTabuCapacity,
		RebootAfter:      DefaultRebootAfter,
		IntensifyEvery:   DefaultIntensifyEvery,
		PerturbTries:     DefaultPerturbTries,
		PerturbFraction:  DefaultPerturbFraction,
		RepetitionWeight: DefaultRepetitionWeight,
	}
	switch a {
	case Annealing:
		p.Moves = Reversal
	case EnhancedTabu:
		p.Moves = Reversal
		p.Start = StartGreedy
		p.TabuCapacity = DefaultEnhancedCapacity
	}

	return p
}

// workers resolves the effective worker count.
func (p Params) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// Record is the per-iteration result emitted by Engine.Step.
//
// Tour and Cost always describe the current tour after the iteration. For
// annealing, Move/CandidateCost describe the tested candidate, which may have
// been rejected (Accepted == false).
type Record struct {
	Iteration     int   // 0 for the initial record, then 1, 2, ...
	Move          Move  // selected move; zero when HasMove is false
	HasMove       bool  // false for the initial record and descent local optima
	Tour          Tour  // snapshot of the current tour
	Cost          int64 // cost of Tour
	CandidateCost int64 // cost of the selected candidate
	Accepted      bool  // whether the candidate replaced the current tour
	NewBest       bool  // whether the best-known cost strictly improved
	BestCost      int64 // best-known cost after the iteration

	// Simulated annealing.
	Temperature float64 // temperature used for the acceptance test
	Cooldowns   int     // cooldown counter k
	Cooled      bool    // a cooldown fired at the start of this iteration
	Delta       int64   // CandidateCost - previous cost
	Probability float64 // acceptance probability
	Tested      int     // candidates tested since the last cooldown
	AcceptedRun int     // candidates accepted since the last cooldown

	// Tabu search.
	Stagnation int        // non-improvement streak
	Reboots    int        // reboots performed so far
	Reboot     RebootKind // reboot that preceded this iteration
	TabuLen    int        // tabu list size after the iteration

	// Descent.
	LocalOptimum bool // no improving exchange exists from the current tour
}

// Result is the final outcome of a run.
type Result struct {
	BestTour      Tour  // best tour found
	BestCost      int64 // its cost
	BestIteration int   // iteration at which BestCost was first reached
	Iterations    int   // iterations performed
}
