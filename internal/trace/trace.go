// Package trace writes per-iteration search records and the final summary.
//
// Two formats are provided: Text, one human-readable line per kept record, and
// JSON, one JSON object per line for downstream tooling. Both keep every
// every-th iteration plus any iteration that improved the best cost, cooled
// the temperature or rebooted the search.
package trace

import (
	"time"

	"github.com/katalvlaran/tourlab/tsp"
)

// Reporter consumes records in iteration order and is closed with the run summary.
type Reporter interface {
	Record(r tsp.Record) error
	Close(s Summary) error
}

// Summary describes a finished (or interrupted) run.
type Summary struct {
	RunID       string
	Algo        tsp.Algo
	Nodes       int
	Seed        uint64 // 0 when a replay source drove the run
	Result      tsp.Result
	Elapsed     time.Duration
	Interrupted bool
}

// keep reports whether r passes the every-n filter.
func keep(r tsp.Record, every int) bool {
	if every <= 1 || r.Iteration%every == 0 {
		return true
	}

	return r.NewBest || r.Cooled || r.Reboot != tsp.RebootNone
}

// Discard drops everything.
type Discard struct{}

// Record implements Reporter.
func (Discard) Record(tsp.Record) error { return nil }

// Close implements Reporter.
func (Discard) Close(Summary) error { return nil }
