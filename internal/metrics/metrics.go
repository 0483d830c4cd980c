// Package metrics exposes search progress as Prometheus collectors.
//
// A CLI run has no scrape endpoint, so the registry is written once at the end
// of the run in the node-exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/tourlab/tsp"
)

// Search holds the collectors of one run on a dedicated registry.
type Search struct {
	Registry *prometheus.Registry

	// Iterations counts completed engine steps.
	Iterations prometheus.Counter
	// Accepted counts candidates that replaced the current tour.
	Accepted prometheus.Counter
	// Improvements counts strict improvements of the best-known cost.
	Improvements prometheus.Counter
	// Cooldowns counts annealing temperature decreases.
	Cooldowns prometheus.Counter
	// Reboots counts tabu restarts by kind.
	Reboots *prometheus.CounterVec
	// LocalOptima counts descent iterations that found no improving move.
	LocalOptima prometheus.Counter

	CurrentCost prometheus.Gauge
	BestCost    prometheus.Gauge
	Temperature prometheus.Gauge
	TabuSize    prometheus.Gauge
}

// New registers a fresh collector set labelled with algo and run.
func New(algo, run string) *Search {
	labels := prometheus.Labels{"algorithm": algo, "run": run}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Namespace: "tourlab", Name: name, Help: help, ConstLabels: labels})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tourlab", Name: name, Help: help, ConstLabels: labels})
	}

	s := &Search{
		Registry:     prometheus.NewRegistry(),
		Iterations:   counter("iterations_total", "Completed search iterations."),
		Accepted:     counter("accepted_total", "Candidates accepted as the current tour."),
		Improvements: counter("improvements_total", "Strict improvements of the best-known cost."),
		Cooldowns:    counter("cooldowns_total", "Annealing cooldowns."),
		LocalOptima:  counter("local_optima_total", "Descent iterations stuck in a local optimum."),
		Reboots: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "tourlab", Name: "reboots_total", Help: "Tabu search restarts by kind.", ConstLabels: labels},
			[]string{"kind"},
		),
		CurrentCost: gauge("current_cost", "Cost of the current tour."),
		BestCost:    gauge("best_cost", "Best-known tour cost."),
		Temperature: gauge("temperature", "Annealing temperature."),
		TabuSize:    gauge("tabu_size", "Moves currently in the tabu list."),
	}
	s.Registry.MustRegister(
		s.Iterations, s.Accepted, s.Improvements, s.Cooldowns, s.LocalOptima, s.Reboots,
		s.CurrentCost, s.BestCost, s.Temperature, s.TabuSize,
		collectors.NewGoCollector(),
	)

	return s
}

// Observe folds one record into the collectors. The initial record (iteration 0)
// only sets gauges.
func (s *Search) Observe(r tsp.Record) {
	s.CurrentCost.Set(float64(r.Cost))
	s.BestCost.Set(float64(r.BestCost))
	s.Temperature.Set(r.Temperature)
	s.TabuSize.Set(float64(r.TabuLen))
	if r.Iteration == 0 {
		return
	}

	s.Iterations.Inc()
	if r.Accepted {
		s.Accepted.Inc()
	}
	if r.NewBest {
		s.Improvements.Inc()
	}
	if r.Cooled {
		s.Cooldowns.Inc()
	}
	if r.Reboot != tsp.RebootNone {
		s.Reboots.WithLabelValues(r.Reboot.String()).Inc()
	}
	if r.LocalOptimum {
		s.LocalOptima.Inc()
	}
}

// WriteTextfile writes the registry to path in the Prometheus text format.
func (s *Search) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, s.Registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
