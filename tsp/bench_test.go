// Package tsp_test - benchmarks for the search engine.
// Scope:
//   - Delta vs full recomputation of a neighbour's cost.
//   - Sequential vs parallel neighbourhood evaluation.
//   - One engine step per algorithm.
//
// Policy:
//   - Synthetic instances and fixed seeds (seedDet).
//   - Inputs are built outside the timer.
package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/tourlab/tsp"
)

// BenchmarkDelta_n200 prices one exchange through the O(1) delta.
func BenchmarkDelta_n200(b *testing.B) {
	const n = 200
	var (
		m    = model(b, syntheticInstance(b, n))
		tour = tsp.RandomTour(tsp.NewLiveSource(seedDet), n)
		mv   = tsp.Move{I: 150, J: 40}
		sink int64
		it   int
	)
	b.ReportAllocs()
	b.ResetTimer()
	for it = 0; it < b.N; it++ {
		sink += m.Delta(tour, mv, tsp.Exchange)
	}
	_ = sink
}

// BenchmarkRecompute_n200 prices the same exchange by rebuilding the tour.
func BenchmarkRecompute_n200(b *testing.B) {
	const n = 200
	var (
		m    = model(b, syntheticInstance(b, n))
		tour = tsp.RandomTour(tsp.NewLiveSource(seedDet), n)
		mv   = tsp.Move{I: 150, J: 40}
		sink int64
		it   int
	)
	b.ReportAllocs()
	b.ResetTimer()
	for it = 0; it < b.N; it++ {
		sink += m.TourCost(tour.Apply(mv, tsp.Exchange))
	}
	_ = sink
}

func benchmarkEvaluate(b *testing.B, workers int) {
	const n = 150
	var (
		m     = model(b, syntheticInstance(b, n))
		tour  = tsp.RandomTour(tsp.NewLiveSource(seedDet), n)
		cost  = m.TourCost(tour)
		moves = tsp.AllMoves(n)
		ev    = tsp.NewEvaluator(m, tsp.Reversal, workers)
		ctx   = context.Background()
		it    int
	)
	b.ReportAllocs()
	b.ResetTimer()
	for it = 0; it < b.N; it++ {
		if _, _, err := ev.Best(ctx, tour, cost, moves, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEvaluate_Sequential_n150 scans 11 175 reversals on one goroutine.
func BenchmarkEvaluate_Sequential_n150(b *testing.B) { benchmarkEvaluate(b, 1) }

// BenchmarkEvaluate_Parallel_n150 fans the same scan out over 8 workers.
func BenchmarkEvaluate_Parallel_n150(b *testing.B) { benchmarkEvaluate(b, 8) }

// BenchmarkEngineStep_n100 measures one iteration of every algorithm.
func BenchmarkEngineStep_n100(b *testing.B) {
	const n = 100
	costs := syntheticInstance(b, n)
	for _, algo := range []tsp.Algo{tsp.Annealing, tsp.Tabu, tsp.EnhancedTabu, tsp.Descent} {
		b.Run(algo.String(), func(b *testing.B) {
			eng, err := tsp.NewEngine(costs, tsp.NewLiveSource(seedDet), tsp.DefaultParams(algo))
			if err != nil {
				b.Fatal(err)
			}
			ctx := context.Background()
			b.ReportAllocs()
			b.ResetTimer()
			var it int
			for it = 0; it < b.N; it++ {
				if _, err = eng.Step(ctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
