// Package tsp_test provides small instance builders shared across the tests.
package tsp_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourlab/matrix"
	"github.com/katalvlaran/tourlab/tsp"
)

const (
	// smallText is the 3-node instance whose three Hamiltonian cycles all cost 14.
	smallText = "1\n2 3\n4 5 6\n"

	// seedDet is the seed used by determinism tests.
	seedDet = uint64(20240506)
)

// smallInstance parses smallText.
func smallInstance(t testing.TB) *matrix.Triangular {
	t.Helper()
	costs, err := matrix.Parse(strings.NewReader(smallText))
	require.NoError(t, err)

	return costs
}

// syntheticInstance builds an n-node table with irregular but reproducible costs in [1, 97].
func syntheticInstance(t testing.TB, n int) *matrix.Triangular {
	t.Helper()
	costs, err := matrix.NewTriangular(n + 1)
	require.NoError(t, err)
	var r, c int
	for r = 1; r <= n; r++ {
		for c = 0; c < r; c++ {
			v := int64((r*37+c*91)^(r*c))%97 + 1
			require.NoError(t, costs.Set(r, c, v))
		}
	}

	return costs
}

// uniformInstance builds an n-node table where every edge costs v.
func uniformInstance(t testing.TB, n int, v int64) *matrix.Triangular {
	t.Helper()
	costs, err := matrix.NewTriangular(n + 1)
	require.NoError(t, err)
	for tr := range costs.Triples() {
		require.NoError(t, costs.Set(tr.Row, tr.Col, v))
	}

	return costs
}

// collect runs eng for n iterations and returns every record, the initial one first.
func collect(t testing.TB, eng *tsp.Engine, n int) ([]tsp.Record, tsp.Result) {
	t.Helper()
	var recs []tsp.Record
	res, err := eng.Run(context.Background(), n, func(r tsp.Record) error {
		recs = append(recs, r)

		return nil
	})
	require.NoError(t, err)
	require.Len(t, recs, n+1)

	return recs, res
}

// model wraps costs in a CostModel.
func model(t testing.TB, costs *matrix.Triangular) *tsp.CostModel {
	t.Helper()
	m, err := tsp.NewCostModel(costs)
	require.NoError(t, err)

	return m
}
