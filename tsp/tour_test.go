package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/tsp"
)

func TestTour_ApplyExchangeAndReversal(t *testing.T) {
	base := tsp.Tour{1, 2, 3}
	m := tsp.NewMove(0, 2)
	require.Equal(t, tsp.Move{I: 2, J: 0}, m)

	assert.Equal(t, tsp.Tour{3, 2, 1}, base.Apply(m, tsp.Exchange))
	assert.Equal(t, tsp.Tour{3, 2, 1}, base.Apply(m, tsp.Reversal))
	assert.Equal(t, tsp.Tour{1, 2, 3}, base, "Apply must not mutate its receiver")

	wide := tsp.Tour{1, 2, 3, 4}
	assert.Equal(t, tsp.Tour{4, 3, 2, 1}, wide.Apply(tsp.Move{I: 3, J: 0}, tsp.Reversal))
	assert.Equal(t, tsp.Tour{4, 2, 3, 1}, wide.Apply(tsp.Move{I: 3, J: 0}, tsp.Exchange))

	// Two-wide ranges coincide.
	assert.Equal(t, wide.Apply(tsp.Move{I: 2, J: 1}, tsp.Exchange), wide.Apply(tsp.Move{I: 2, J: 1}, tsp.Reversal))
}

func TestTour_ApplyPanicsOnBadMove(t *testing.T) {
	base := tsp.Tour{1, 2, 3}
	assert.Panics(t, func() { base.Apply(tsp.Move{I: 3, J: 0}, tsp.Exchange) })
	assert.Panics(t, func() { base.Apply(tsp.Move{I: 1, J: 1}, tsp.Reversal) })
}

func TestTour_Validate(t *testing.T) {
	require.NoError(t, tsp.Tour{3, 1, 2}.Validate(3))

	cases := map[string]tsp.Tour{
		"short":     {1, 2},
		"depot":     {0, 1, 2},
		"too large": {1, 2, 4},
		"repeat":    {1, 2, 2},
	}
	for name, tour := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, tour.Validate(3), tsp.ErrInvalidTour)
		})
	}
}

func TestTour_StringAndClone(t *testing.T) {
	tour := tsp.Tour{2, 1, 3}
	assert.Equal(t, "0 2 1 3 0", tour.String())

	cp := tour.Clone()
	cp[0] = 9
	assert.Equal(t, 2, tour[0])
	assert.True(t, tour.Equal(tsp.Tour{2, 1, 3}))
	assert.False(t, tour.Equal(cp))
}

func TestAllMoves_OrderMatchesIndex(t *testing.T) {
	moves := tsp.AllMoves(6)
	require.Len(t, moves, tsp.MoveCount(6))
	require.Equal(t, tsp.Move{I: 1, J: 0}, moves[0])
	require.Equal(t, tsp.Move{I: 5, J: 4}, moves[len(moves)-1])

	for k, m := range moves {
		require.Greater(t, m.I, m.J)
		require.Equal(t, k, m.Index())
	}
	assert.Nil(t, tsp.AllMoves(1))
}

func TestAnchoredMoves(t *testing.T) {
	got := tsp.AnchoredMoves(4, 2)
	want := []tsp.Move{{I: 2, J: 0}, {I: 2, J: 1}, {I: 3, J: 2}}
	assert.Equal(t, want, got)

	assert.Len(t, tsp.AnchoredMoves(5, 0), 4)
	assert.Nil(t, tsp.AnchoredMoves(5, 5))
}
