package trace_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/internal/trace"
	"github.com/katalvlaran/tourlab/tsp"
)

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestText_Annealing(t *testing.T) {
	var buf bytes.Buffer
	rep := trace.NewText(&buf, tsp.Annealing, 1, true)

	require.NoError(t, rep.Record(tsp.Record{Iteration: 0, Tour: tsp.Tour{1, 2, 3}, Cost: 14, BestCost: 14}))
	require.NoError(t, rep.Record(tsp.Record{
		Iteration: 1, Move: tsp.Move{I: 2, J: 0}, HasMove: true, Tour: tsp.Tour{1, 2, 3},
		Cost: 14, CandidateCost: 16, BestCost: 14, Delta: 2, Temperature: 0.5, Probability: 0.0183,
		Cooled: true, Cooldowns: 3,
	}))

	got := lines(&buf)
	require.Len(t, got, 2)
	assert.Equal(t, "iter=0 cost=14 best=14 start tour=[0 1 2 3 0]", got[0])
	assert.Equal(t, "iter=1 cost=14 best=14 move=(2,0) cand=16 delta=+2 T=0.5000 p=0.0183 rejected cooldown=3 tour=[0 1 2 3 0]", got[1])
}

func TestText_TabuAndEvery(t *testing.T) {
	var buf bytes.Buffer
	rep := trace.NewText(&buf, tsp.EnhancedTabu, 10, false)

	require.NoError(t, rep.Record(tsp.Record{Iteration: 3, Cost: 20, BestCost: 18}))
	require.NoError(t, rep.Record(tsp.Record{
		Iteration: 4, Move: tsp.Move{I: 5, J: 1}, HasMove: true, Cost: 17, BestCost: 17, NewBest: true,
		Accepted: true, Stagnation: 0, TabuLen: 4,
	}))
	require.NoError(t, rep.Record(tsp.Record{
		Iteration: 7, Move: tsp.Move{I: 3, J: 2}, HasMove: true, Cost: 19, BestCost: 17,
		Reboot: tsp.RebootDiversify, Reboots: 2, TabuLen: 1,
	}))
	require.NoError(t, rep.Record(tsp.Record{Iteration: 10, Move: tsp.Move{I: 1, J: 0}, Cost: 21, BestCost: 17, Stagnation: 3, TabuLen: 4}))

	got := lines(&buf)
	require.Len(t, got, 3, "iteration 3 is filtered out")
	assert.Equal(t, "iter=4 cost=17 best=17 move=(5,1) streak=0 tabu=4 *", got[0])
	assert.Equal(t, "iter=7 cost=19 best=17 reboot=diversify#2 move=(3,2) streak=0 tabu=1", got[1])
	assert.Equal(t, "iter=10 cost=21 best=17 move=(1,0) streak=3 tabu=4", got[2])
}

func TestText_DescentAndSummary(t *testing.T) {
	var buf bytes.Buffer
	rep := trace.NewText(&buf, tsp.Descent, 1, false)
	require.NoError(t, rep.Record(tsp.Record{Iteration: 9, Cost: 30, BestCost: 30, LocalOptimum: true}))
	require.NoError(t, rep.Close(trace.Summary{
		Interrupted: true,
		Result:      tsp.Result{BestTour: tsp.Tour{2, 1}, BestCost: 30, BestIteration: 6, Iterations: 9},
	}))

	assert.Equal(t, "iter=9 cost=30 best=30 local-optimum\n"+
		"interrupted after 9 iterations\n"+
		"best cost: 30 (iteration 6)\n"+
		"best tour: 0 2 1 0\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	rep := trace.NewJSON(&buf, "run-7", 1)

	require.NoError(t, rep.Record(tsp.Record{Iteration: 0, Tour: tsp.Tour{1, 2, 3}, Cost: 14, BestCost: 14}))
	require.NoError(t, rep.Record(tsp.Record{
		Iteration: 1, Move: tsp.Move{I: 2, J: 1}, HasMove: true, Tour: tsp.Tour{1, 3, 2},
		Cost: 14, BestCost: 14, Accepted: true, Reboot: tsp.RebootIntensify, Reboots: 1,
	}))
	require.NoError(t, rep.Close(trace.Summary{
		Algo: tsp.Tabu, Nodes: 3, Seed: 42, Elapsed: 1500 * time.Millisecond,
		Result: tsp.Result{BestTour: tsp.Tour{1, 2, 3}, BestCost: 14, Iterations: 1},
	}))

	got := lines(&buf)
	require.Len(t, got, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(got[0]), &first))
	assert.Equal(t, "record", first["type"])
	assert.Equal(t, "run-7", first["run"])
	assert.NotContains(t, first, "move")
	assert.NotContains(t, first, "temperature")

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(got[1]), &second))
	assert.Equal(t, []any{2.0, 1.0}, second["move"])
	assert.Equal(t, "intensify", second["reboot"])
	assert.Equal(t, []any{1.0, 3.0, 2.0}, second["tour"])

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(got[2]), &summary))
	assert.Equal(t, "summary", summary["type"])
	assert.Equal(t, "tabu", summary["algorithm"])
	assert.Equal(t, 1.5, summary["elapsed_seconds"])
	assert.Equal(t, 14.0, summary["best_cost"])
}

func TestDiscard(t *testing.T) {
	var rep trace.Reporter = trace.Discard{}
	require.NoError(t, rep.Record(tsp.Record{}))
	require.NoError(t, rep.Close(trace.Summary{}))
}
