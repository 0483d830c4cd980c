// Package tourlab is a laboratory for local-search heuristics on the
// symmetric travelling salesman problem with a fixed depot.
//
// What is inside?
//
//	matrix/          - packed lower-triangular cost tables, text parser, triple iterator
//	tsp/             - tours, O(1) move deltas, random sources, simulated annealing,
//	                   tabu search (plain and frequency-diversified), descent, engine
//	internal/config  - YAML / TOML run configuration with per-algorithm presets
//	internal/trace   - per-iteration text and JSON-lines reporters
//	internal/metrics - Prometheus collectors written as a textfile
//	internal/render  - Graphviz DOT and SVG drawings of a tour
//	internal/cli     - the tourlab command (run, inspect)
//
// A cost table lists one row per non-depot node; row r holds the r costs
// d(r,0) .. d(r,r-1):
//
//	1
//	2 3
//	4 5 6
//
// Every run is reproducible: all random decisions come from one source that
// is either seeded or replays a recorded sequence of values in [0,1).
//
//	go run ./cmd/tourlab run instance.txt --algo tabu-enhanced --seed 7
package tourlab
