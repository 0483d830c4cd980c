// Package tsp_test provides runnable, deterministic examples. The instance is
// the 3-node table "1 / 2 3 / 4 5 6" whose three distinct cycles all cost 14,
// so every strategy prints the same optimum.
package tsp_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/tourlab/matrix"
	"github.com/katalvlaran/tourlab/tsp"
)

// ExampleCostModel_TourCost prices depot → 1 → 2 → 3 → depot.
func ExampleCostModel_TourCost() {
	costs, _ := matrix.Parse(strings.NewReader("1\n2 3\n4 5 6\n"))
	m, _ := tsp.NewCostModel(costs)

	fmt.Println(m.TourCost(tsp.Tour{1, 2, 3}))
	// Output: 14
}

// ExampleRandomTour shows collision probing on a constant replay sequence.
func ExampleRandomTour() {
	src, _ := tsp.NewReplaySource([]float64{0, 0, 0})

	fmt.Println(tsp.RandomTour(src, 3))
	// Output: 0 1 2 3 0
}

// ExampleEngine_Run runs first-improvement descent from a fixed tour.
func ExampleEngine_Run() {
	costs, _ := matrix.Parse(strings.NewReader("1\n2 3\n4 5 6\n"))
	eng, _ := tsp.NewEngine(costs, tsp.NewLiveSource(7), tsp.DefaultParams(tsp.Descent),
		tsp.WithStartTour(tsp.Tour{1, 2, 3}))

	res, _ := eng.Run(context.Background(), 3, func(r tsp.Record) error {
		fmt.Printf("iter=%d cost=%d optimum=%v\n", r.Iteration, r.Cost, r.LocalOptimum)

		return nil
	})
	fmt.Println(res.BestTour, res.BestCost)
	// Output:
	// iter=0 cost=14 optimum=false
	// iter=1 cost=14 optimum=true
	// iter=2 cost=14 optimum=true
	// iter=3 cost=14 optimum=true
	// 0 1 2 3 0 14
}
