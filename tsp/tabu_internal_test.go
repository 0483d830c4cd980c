package tsp

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/matrix"
)

// 34 nodes give 561 moves, above parallelThreshold.
func TestTabu_ListedMovesNeverApplied(t *testing.T) {
	const n, iters = 34, 800
	costs, err := matrix.NewTriangular(n + 1)
	require.NoError(t, err)
	for tr := range costs.Triples() {
		require.NoError(t, costs.Set(tr.Row, tr.Col, int64((tr.Row*37+tr.Col*91)^(tr.Row*tr.Col))%97+1))
	}
	require.GreaterOrEqual(t, MoveCount(n), parallelThreshold)

	for _, algo := range []Algo{Tabu, EnhancedTabu} {
		t.Run(algo.String(), func(t *testing.T) {
			p := DefaultParams(algo)
			p.TabuCapacity = 50
			p.RebootAfter = 15
			p.IntensifyEvery = 3
			p.PerturbTries = 20

			eng, err := NewEngine(costs, NewLiveSource(11), p, WithWorkers(4))
			require.NoError(t, err)
			s, ok := eng.strat.(*tabuSearch)
			require.True(t, ok)

			ctx := context.Background()
			var checked, reboots int
			for i := 1; i <= iters; i++ {
				rebooting := s.stagnation > p.RebootAfter
				listed := s.list.Moves()

				rec, err := eng.Step(ctx)
				require.NoError(t, err)
				require.LessOrEqual(t, s.list.Len(), s.list.Cap())
				if rebooting {
					require.NotEqual(t, RebootNone, rec.Reboot, "iteration %d", i)
					reboots++
					continue
				}
				require.Equal(t, RebootNone, rec.Reboot, "iteration %d", i)
				require.False(t, slices.Contains(listed, rec.Move), "iteration %d applied tabu move %s", i, rec.Move)
				checked++
			}
			require.Positive(t, reboots)
			require.Positive(t, checked)
		})
	}
}
