package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/tsp"
)

func TestEdgeFrequency(t *testing.T) {
	f, err := tsp.NewEdgeFrequency(4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.Max(), "running maximum starts at 1")
	assert.Zero(t, f.Penalty(tsp.Tour{1, 2, 3}))

	f.Record(tsp.Tour{2, 1, 3})
	f.Record(tsp.Tour{2, 1, 3})
	assert.Equal(t, int64(2), f.Max())
	assert.Equal(t, int64(2), f.Count(0, 2), "depot edges are counted")
	assert.Equal(t, int64(2), f.Count(3, 0))
	assert.Equal(t, int64(2), f.Count(1, 2))
	assert.Zero(t, f.Count(1, 0))
	assert.Zero(t, f.Count(1, 1))

	assert.InDelta(t, 4.0, f.Penalty(tsp.Tour{2, 1, 3}), 1e-12)
	assert.InDelta(t, 2.0, f.Penalty(tsp.Tour{1, 2, 3}), 1e-12)
}

func TestEdgeFrequency_BadShape(t *testing.T) {
	_, err := tsp.NewEdgeFrequency(1)
	require.Error(t, err)
}
