// Package tsp implements local-search heuristics for the symmetric travelling
// salesman problem with a fixed depot.
//
// Instances are matrix.Triangular cost tables over nodes 0..N, node 0 being the
// depot. A Tour lists nodes 1..N; the route always starts and ends at 0.
//
// Strategies (selected by Params.Algo):
//
//   - Annealing - simulated annealing over anchored segment reversals with
//     threshold-triggered cooldowns T = T0/(1+k).
//
//   - Tabu - best-admissible-move tabu search with FIFO short-term memory and
//     intensifying reboots after a run of non-improving iterations.
//
//   - EnhancedTabu - adds greedy construction and diversifying reboots steered
//     by an edge-frequency memory.
//
//   - Descent - first-improvement hill climbing; reports local optima.
//
// Every stochastic choice is drawn from a RandomSource, either a seeded
// LiveSource or a ReplaySource cycling through recorded values, so runs are
// reproducible bit for bit.
//
// Complexity (per iteration, N nodes):
//
//   - Annealing: O(N) candidates scored in O(1) each.
//   - Tabu: O(N²) candidates, fanned out over Params.Workers goroutines.
//   - Descent: O(N²) worst case, first improvement stops the scan.
//
// Basic use:
//
//	costs, _ := matrix.ParseFile("instance.txt")
//	eng, _ := tsp.NewEngine(costs, tsp.NewLiveSource(42), tsp.DefaultParams(tsp.Tabu))
//	res, _ := eng.Run(ctx, tsp.DefaultIterations, nil)
//	fmt.Println(res.BestCost, res.BestTour)
package tsp
