package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tourlab/tsp"
)

// Text writes one line per kept record.
type Text struct {
	w     io.Writer
	algo  tsp.Algo
	every int
	tours bool
}

// NewText returns a text reporter. With tours set every line ends with the route.
func NewText(w io.Writer, algo tsp.Algo, every int, tours bool) *Text {
	return &Text{w: w, algo: algo, every: every, tours: tours}
}

// Record implements Reporter.
func (t *Text) Record(r tsp.Record) error {
	if !keep(r, t.every) {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "iter=%d cost=%d best=%d", r.Iteration, r.Cost, r.BestCost)

	switch {
	case r.Iteration == 0:
		b.WriteString(" start")
	case t.algo == tsp.Annealing:
		verdict := "rejected"
		if r.Accepted {
			verdict = "accepted"
		}
		fmt.Fprintf(&b, " move=%s cand=%d delta=%+d T=%.4f p=%.4f %s",
			r.Move, r.CandidateCost, r.Delta, r.Temperature, r.Probability, verdict)
		if r.Cooled {
			fmt.Fprintf(&b, " cooldown=%d", r.Cooldowns)
		}
	case t.algo == tsp.Tabu || t.algo == tsp.EnhancedTabu:
		if r.Reboot != tsp.RebootNone {
			fmt.Fprintf(&b, " reboot=%s#%d", r.Reboot, r.Reboots)
		}
		fmt.Fprintf(&b, " move=%s streak=%d tabu=%d", r.Move, r.Stagnation, r.TabuLen)
	case r.LocalOptimum:
		b.WriteString(" local-optimum")
	default:
		fmt.Fprintf(&b, " move=%s", r.Move)
	}
	if r.NewBest {
		b.WriteString(" *")
	}
	if t.tours {
		fmt.Fprintf(&b, " tour=[%s]", r.Tour)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(t.w, b.String())

	return err
}

// Close implements Reporter.
func (t *Text) Close(s Summary) error {
	status := "completed"
	if s.Interrupted {
		status = "interrupted"
	}
	_, err := fmt.Fprintf(t.w, "%s after %d iterations\nbest cost: %d (iteration %d)\nbest tour: %s\n",
		status, s.Result.Iterations, s.Result.BestCost, s.Result.BestIteration, s.Result.BestTour)

	return err
}
