package tsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/tsp"
)

// Parallel evaluation must pick exactly the candidate a sequential scan picks.
func TestEvaluator_ParallelMatchesSequential(t *testing.T) {
	const n = 45 // 990 moves, above the parallel threshold
	m := model(t, syntheticInstance(t, n))
	moves := tsp.AllMoves(n)
	ctx := context.Background()

	skipOdd := func(mv tsp.Move) bool { return mv.Index()%2 == 1 }
	var seed uint64
	for seed = 1; seed <= 4; seed++ {
		tour := tsp.RandomTour(tsp.NewLiveSource(seed), n)
		cost := m.TourCost(tour)
		for _, kind := range []tsp.MoveKind{tsp.Exchange, tsp.Reversal} {
			for _, skip := range []func(tsp.Move) bool{nil, skipOdd} {
				seq, okSeq, err := tsp.NewEvaluator(m, kind, 1).Best(ctx, tour, cost, moves, skip)
				require.NoError(t, err)
				par, okPar, err := tsp.NewEvaluator(m, kind, 7).Best(ctx, tour, cost, moves, skip)
				require.NoError(t, err)
				require.True(t, okSeq)
				require.Equal(t, okSeq, okPar)
				require.Equal(t, seq, par)
				require.Equal(t, m.TourCost(tour.Apply(seq.Move, kind)), seq.Cost)
			}
		}
	}
}

func TestEvaluator_TiesGoToFirstCandidate(t *testing.T) {
	const n = 40
	m := model(t, uniformInstance(t, n, 3))
	tour := tsp.RandomTour(tsp.NewLiveSource(seedDet), n)
	moves := tsp.AllMoves(n)

	for _, workers := range []int{1, 4} {
		c, ok, err := tsp.NewEvaluator(m, tsp.Exchange, workers).Best(context.Background(), tour, m.TourCost(tour), moves, nil)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 0, c.Index)
		assert.Equal(t, moves[0], c.Move)
	}
}

func TestEvaluator_AllSkipped(t *testing.T) {
	m := model(t, smallInstance(t))
	tour := tsp.Tour{1, 2, 3}
	_, ok, err := tsp.NewEvaluator(m, tsp.Exchange, 1).
		Best(context.Background(), tour, 14, tsp.AllMoves(3), func(tsp.Move) bool { return true })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvaluator_Cancelled(t *testing.T) {
	const n = 45
	m := model(t, syntheticInstance(t, n))
	tour := tsp.RandomTour(tsp.NewLiveSource(seedDet), n)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, _, err := tsp.NewEvaluator(m, tsp.Reversal, workers).Best(ctx, tour, m.TourCost(tour), tsp.AllMoves(n), nil)
		require.ErrorIs(t, err, context.Canceled)
	}
}
