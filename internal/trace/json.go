package trace

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/tourlab/tsp"
)

// JSON writes newline-delimited JSON objects.
type JSON struct {
	enc   *json.Encoder
	run   string
	every int
}

// NewJSON returns a JSON-lines reporter tagging every object with run.
func NewJSON(w io.Writer, run string, every int) *JSON {
	return &JSON{enc: json.NewEncoder(w), run: run, every: every}
}

type recordLine struct {
	Type          string   `json:"type"`
	Run           string   `json:"run"`
	Iteration     int      `json:"iteration"`
	Move          *[2]int  `json:"move,omitempty"`
	Tour          []int    `json:"tour"`
	Cost          int64    `json:"cost"`
	CandidateCost int64    `json:"candidate_cost"`
	Accepted      bool     `json:"accepted"`
	NewBest       bool     `json:"new_best"`
	BestCost      int64    `json:"best_cost"`
	Temperature   *float64 `json:"temperature,omitempty"`
	Probability   *float64 `json:"probability,omitempty"`
	Cooldowns     int      `json:"cooldowns,omitempty"`
	Stagnation    int      `json:"stagnation,omitempty"`
	Reboots       int      `json:"reboots,omitempty"`
	Reboot        string   `json:"reboot,omitempty"`
	TabuLen       int      `json:"tabu_len,omitempty"`
	LocalOptimum  bool     `json:"local_optimum,omitempty"`
}

type summaryLine struct {
	Type          string  `json:"type"`
	Run           string  `json:"run"`
	Algorithm     string  `json:"algorithm"`
	Nodes         int     `json:"nodes"`
	Seed          uint64  `json:"seed,omitempty"`
	Iterations    int     `json:"iterations"`
	BestCost      int64   `json:"best_cost"`
	BestIteration int     `json:"best_iteration"`
	BestTour      []int   `json:"best_tour"`
	ElapsedSec    float64 `json:"elapsed_seconds"`
	Interrupted   bool    `json:"interrupted"`
}

// Record implements Reporter.
func (j *JSON) Record(r tsp.Record) error {
	if !keep(r, j.every) {
		return nil
	}
	line := recordLine{
		Type:          "record",
		Run:           j.run,
		Iteration:     r.Iteration,
		Tour:          r.Tour,
		Cost:          r.Cost,
		CandidateCost: r.CandidateCost,
		Accepted:      r.Accepted,
		NewBest:       r.NewBest,
		BestCost:      r.BestCost,
		Cooldowns:     r.Cooldowns,
		Stagnation:    r.Stagnation,
		Reboots:       r.Reboots,
		TabuLen:       r.TabuLen,
		LocalOptimum:  r.LocalOptimum,
	}
	if r.HasMove {
		line.Move = &[2]int{r.Move.I, r.Move.J}
	}
	if r.Temperature != 0 {
		line.Temperature, line.Probability = &r.Temperature, &r.Probability
	}
	if r.Reboot != tsp.RebootNone {
		line.Reboot = r.Reboot.String()
	}

	return j.enc.Encode(line)
}

// Close implements Reporter.
func (j *JSON) Close(s Summary) error {
	return j.enc.Encode(summaryLine{
		Type:          "summary",
		Run:           j.run,
		Algorithm:     s.Algo.String(),
		Nodes:         s.Nodes,
		Seed:          s.Seed,
		Iterations:    s.Result.Iterations,
		BestCost:      s.Result.BestCost,
		BestIteration: s.Result.BestIteration,
		BestTour:      s.Result.BestTour,
		ElapsedSec:    s.Elapsed.Seconds(),
		Interrupted:   s.Interrupted,
	})
}
