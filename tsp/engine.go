// Package tsp - the search engine.
//
// An Engine owns one run: the cost model, the random source, the current and
// best tours, and the strategy-specific state. It exposes single-step
// iteration (Step) and a bounded driver (Run) that forwards every Record to a
// callback. Runs are deterministic given the same cost table, parameters and
// random sequence.
//
// Concurrency:
//   - An Engine is not safe for concurrent use. Internally, candidate
//     evaluation may fan out over Params.Workers goroutines.
package tsp

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/tourlab/matrix"
)

// strategy is the closed set of search procedures an Engine can drive.
type strategy interface {
	// start prepares strategy state once the initial tour is known.
	start(e *Engine) error
	// step performs one iteration and fills the strategy-specific fields of rec.
	step(ctx context.Context, e *Engine, rec *Record) error
	// describe fills strategy-specific fields of the initial record.
	describe(rec *Record)
}

// search holds the strategy-independent run state.
type search struct {
	cur       Tour
	cost      int64
	best      Tour
	bestCost  int64
	bestIter  int
	iteration int
}

// set replaces the current tour.
func (s *search) set(t Tour, cost int64) {
	s.cur, s.cost = t, cost
}

// promote records the current tour as best when strictly cheaper.
func (s *search) promote() bool {
	if s.cost >= s.bestCost {
		return false
	}
	s.best, s.bestCost, s.bestIter = s.cur.Clone(), s.cost, s.iteration

	return true
}

// Option customises an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	logger  *log.Logger
	workers int
	start   Tour
}

// WithLogger routes engine diagnostics (cooldowns, reboots, new bests) to l.
func WithLogger(l *log.Logger) Option {
	return func(o *engineOptions) { o.logger = l }
}

// WithWorkers overrides Params.Workers.
func WithWorkers(n int) Option {
	return func(o *engineOptions) { o.workers = n }
}

// WithStartTour seeds the run with t instead of constructing one.
// No random values are consumed for construction.
func WithStartTour(t Tour) Option {
	return func(o *engineOptions) { o.start = t.Clone() }
}

// Engine drives one search run.
type Engine struct {
	model  *CostModel
	src    RandomSource
	params Params
	eval   *Evaluator
	strat  strategy
	log    *log.Logger
	state  search
}

// NewEngine validates its inputs, builds the initial tour and prepares the strategy.
//
// Errors: ErrInstanceTooSmall, ErrInvalidParams, ErrUnknownAlgo, ErrInvalidTour.
func NewEngine(costs *matrix.Triangular, src RandomSource, p Params, opts ...Option) (*Engine, error) {
	cfg := engineOptions{workers: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers >= 0 {
		p.Workers = cfg.workers
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	model, err := NewCostModel(costs)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("nil random source: %w", ErrInvalidParams)
	}
	if err = ValidateParams(p, model.Nodes()); err != nil {
		return nil, err
	}

	e := &Engine{
		model:  model,
		src:    src,
		params: p,
		log:    cfg.logger.With("algo", p.Algo.String()),
	}
	switch p.Algo {
	case Annealing:
		e.strat = &annealing{}
		e.eval = NewEvaluator(model, Reversal, p.workers())
	case Tabu, EnhancedTabu:
		e.strat = &tabuSearch{enhanced: p.Algo == EnhancedTabu}
		e.eval = NewEvaluator(model, p.Moves, p.workers())
	case Descent:
		e.strat = &descent{}
		e.eval = NewEvaluator(model, p.Moves, 1)
	default:
		return nil, fmt.Errorf("%s: %w", p.Algo, ErrUnknownAlgo)
	}

	var t Tour
	switch {
	case cfg.start != nil:
		if err = cfg.start.Validate(model.Nodes()); err != nil {
			return nil, err
		}
		t = cfg.start
	case p.Start == StartGreedy:
		if t, err = GreedyTour(costs); err != nil {
			return nil, err
		}
	default:
		t = RandomTour(src, model.Nodes())
	}
	cost := model.TourCost(t)
	e.state = search{cur: t, cost: cost, best: t.Clone(), bestCost: cost}

	if err = e.strat.start(e); err != nil {
		return nil, err
	}
	e.log.Debug("initial tour", "nodes", model.Nodes(), "start", p.Start.String(), "cost", cost)

	return e, nil
}

// Params returns the effective parameters.
func (e *Engine) Params() Params { return e.params }

// Model returns the cost model.
func (e *Engine) Model() *CostModel { return e.model }

// Iteration returns the number of completed iterations.
func (e *Engine) Iteration() int { return e.state.iteration }

// Current returns a copy of the current tour and its cost.
func (e *Engine) Current() (Tour, int64) { return e.state.cur.Clone(), e.state.cost }

// Initial returns the record describing the state before the first step (iteration 0).
// Called after Step it describes the current state with the iteration number reset to 0.
func (e *Engine) Initial() Record {
	rec := Record{
		Tour:          e.state.cur.Clone(),
		Cost:          e.state.cost,
		CandidateCost: e.state.cost,
		Accepted:      true,
		BestCost:      e.state.bestCost,
	}
	e.strat.describe(&rec)

	return rec
}

// Step performs exactly one iteration.
func (e *Engine) Step(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	var rec Record
	if err := e.strat.step(ctx, e, &rec); err != nil {
		return Record{}, err
	}
	rec.Iteration = e.state.iteration
	rec.Tour = e.state.cur.Clone()
	rec.Cost = e.state.cost
	rec.BestCost = e.state.bestCost
	if rec.NewBest {
		e.log.Debug("new best", "iteration", rec.Iteration, "cost", rec.BestCost)
	}

	return rec, nil
}

// Run emits the initial record, then performs up to iterations steps, passing
// every record to fn (which may be nil). It stops early when ctx is cancelled
// or fn returns an error; the partial Result is returned alongside that error.
func (e *Engine) Run(ctx context.Context, iterations int, fn func(Record) error) (Result, error) {
	if iterations < 0 {
		return Result{}, fmt.Errorf("iterations %d: %w", iterations, ErrInvalidParams)
	}
	if fn != nil {
		if err := fn(e.Initial()); err != nil {
			return e.Result(), err
		}
	}
	var i int
	for i = 0; i < iterations; i++ {
		rec, err := e.Step(ctx)
		if err != nil {
			return e.Result(), err
		}
		if fn != nil {
			if err = fn(rec); err != nil {
				return e.Result(), err
			}
		}
	}

	return e.Result(), nil
}

// Result reports the best tour found so far.
func (e *Engine) Result() Result {
	return Result{
		BestTour:      e.state.best.Clone(),
		BestCost:      e.state.bestCost,
		BestIteration: e.state.bestIter,
		Iterations:    e.state.iteration,
	}
}
