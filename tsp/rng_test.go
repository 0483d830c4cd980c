package tsp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/tsp"
)

func TestLiveSource_Deterministic(t *testing.T) {
	a, b := tsp.NewLiveSource(seedDet), tsp.NewLiveSource(seedDet)
	var i int
	for i = 0; i < 1000; i++ {
		va, vb := a.Next(), b.Next()
		require.Equal(t, va, vb)
		require.GreaterOrEqual(t, va, 0.0)
		require.Less(t, va, 1.0)
	}
}

func TestLiveSource_ZeroSeedPolicy(t *testing.T) {
	zero, one := tsp.NewLiveSource(0), tsp.NewLiveSource(1)
	assert.Equal(t, uint64(1), zero.Seed())
	assert.Equal(t, one.Next(), zero.Next())
}

func TestReplaySource_Cycles(t *testing.T) {
	src, err := tsp.NewReplaySource([]float64{0.1, 0.5, 0.9})
	require.NoError(t, err)
	require.Equal(t, 3, src.Len())

	got := make([]float64, 7)
	for i := range got {
		got[i] = src.Next()
	}
	assert.Equal(t, []float64{0.1, 0.5, 0.9, 0.1, 0.5, 0.9, 0.1}, got)
}

func TestReplaySource_Errors(t *testing.T) {
	_, err := tsp.NewReplaySource(nil)
	require.ErrorIs(t, err, tsp.ErrEmptyReplay)

	_, err = tsp.NewReplaySource([]float64{0.2, 1})
	require.ErrorIs(t, err, tsp.ErrReplayRange)

	_, err = tsp.NewReplaySource([]float64{-0.01})
	require.ErrorIs(t, err, tsp.ErrReplayRange)
}

func TestParseReplay(t *testing.T) {
	src, err := tsp.ParseReplay(strings.NewReader("0.25 0.5\n\n  0.75\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, src.Len())
	assert.Equal(t, 0.25, src.Next())

	_, err = tsp.ParseReplay(strings.NewReader("0.1 abc"))
	require.ErrorIs(t, err, tsp.ErrReplayFormat)

	_, err = tsp.ParseReplay(strings.NewReader("NaN"))
	require.ErrorIs(t, err, tsp.ErrReplayRange)

	_, err = tsp.ParseReplay(strings.NewReader("   \n"))
	require.ErrorIs(t, err, tsp.ErrEmptyReplay)
}

func TestParseReplayFile_Missing(t *testing.T) {
	_, err := tsp.ParseReplayFile(t.TempDir() + "/absent.txt")
	require.Error(t, err)
}
