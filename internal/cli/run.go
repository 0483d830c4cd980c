package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/tourlab/internal/config"
	"github.com/katalvlaran/tourlab/internal/metrics"
	"github.com/katalvlaran/tourlab/internal/render"
	"github.com/katalvlaran/tourlab/internal/trace"
	"github.com/katalvlaran/tourlab/matrix"
	"github.com/katalvlaran/tourlab/tsp"
)

// progressInterval throttles the periodic progress log line.
const progressInterval = 2 * time.Second

type runFlags struct {
	config     string
	algorithm  string
	iterations int
	seed       uint64
	replay     string
	moves      string
	start      string
	workers    int
	capacity   int
	reboot     int
	trace      string
	every      int
	tours      bool
	metrics    string
	dot        string
	svg        string
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run <costs-file>",
		Short: "Search a tour for a cost table",
		Long: `Run one search over the cost table in <costs-file>.

The table lists one row per non-depot node: row r holds the r costs to nodes
0..r-1. Settings come from the preset of --algo, then --config, then flags.`,
		Example: `  tourlab run instance.txt --algo tabu-enhanced --iterations 5000 --seed 7
  tourlab run instance.txt --config run.yaml --trace json > trace.jsonl
  tourlab run instance.txt --replay random.txt --svg best.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			return runSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "configuration file (.yaml, .yml or .toml)")
	fl.StringVarP(&f.algorithm, "algo", "a", tsp.Annealing.String(), "algorithm: annealing, tabu, tabu-enhanced, descent")
	fl.IntVarP(&f.iterations, "iterations", "n", tsp.DefaultIterations, "number of iterations")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed (0 = time based)")
	fl.StringVar(&f.replay, "replay", "", "file of recorded random values in [0,1) to replay instead of a seed")
	fl.StringVar(&f.moves, "moves", "", "move kind: exchange or reversal (default from preset)")
	fl.StringVar(&f.start, "start", "", "initial tour: random or greedy (default from preset)")
	fl.IntVar(&f.workers, "workers", 0, "parallel evaluation workers (0 = GOMAXPROCS)")
	fl.IntVar(&f.capacity, "tabu-capacity", 0, "tabu list capacity (default from preset)")
	fl.IntVar(&f.reboot, "reboot-after", 0, "non-improving iterations before a tabu reboot (default from preset)")
	fl.StringVar(&f.trace, "trace", config.TraceText, "per-iteration trace: text, json or none")
	fl.IntVar(&f.every, "every", 1, "trace every n-th iteration (improvements and reboots are always traced)")
	fl.BoolVar(&f.tours, "tours", false, "include the tour in text trace lines")
	fl.StringVar(&f.metrics, "metrics", "", "write Prometheus metrics to this textfile")
	fl.StringVar(&f.dot, "dot", "", "write the best tour as Graphviz DOT")
	fl.StringVar(&f.svg, "svg", "", "render the best tour as SVG")

	return cmd
}

// resolve layers preset, file and explicitly set flags.
func (f *runFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
		fl  = cmd.Flags()
	)
	if f.config != "" {
		if cfg, err = config.Load(f.config); err != nil {
			return config.Config{}, err
		}
	} else {
		algo, err := tsp.ParseAlgo(f.algorithm)
		if err != nil {
			return config.Config{}, err
		}
		cfg = config.Default(algo)
	}

	if f.config != "" && fl.Changed("algo") {
		// Switching algorithm on top of a file keeps the file's shared settings
		// but takes move kind and start from the new preset.
		algo, err := tsp.ParseAlgo(f.algorithm)
		if err != nil {
			return config.Config{}, err
		}
		def := config.Default(algo)
		cfg.Algorithm, cfg.Moves, cfg.Start = def.Algorithm, def.Moves, def.Start
	}
	if fl.Changed("iterations") {
		cfg.Iterations = f.iterations
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("replay") {
		cfg.Replay = f.replay
	}
	if fl.Changed("moves") {
		cfg.Moves = f.moves
	}
	if fl.Changed("start") {
		cfg.Start = f.start
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("tabu-capacity") {
		cfg.Tabu.Capacity = f.capacity
	}
	if fl.Changed("reboot-after") {
		cfg.Tabu.RebootAfter = f.reboot
	}
	if fl.Changed("trace") {
		cfg.Output.Trace = f.trace
	}
	if fl.Changed("every") {
		cfg.Output.Every = f.every
	}
	if fl.Changed("metrics") {
		cfg.Output.Metrics = f.metrics
	}
	if fl.Changed("dot") {
		cfg.Output.DOT = f.dot
	}
	if fl.Changed("svg") {
		cfg.Output.SVG = f.svg
	}
	if fl.Changed("tours") {
		cfg.Output.Tours = f.tours
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// source builds the random source; the returned seed is 0 for replays.
func source(cfg config.Config) (tsp.RandomSource, uint64, error) {
	if cfg.Replay != "" {
		src, err := tsp.ParseReplayFile(cfg.Replay)
		if err != nil {
			return nil, 0, err
		}

		return src, 0, nil
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := tsp.NewLiveSource(seed)

	return src, src.Seed(), nil
}

func newReporter(out io.Writer, cfg config.Config, algo tsp.Algo, run string) trace.Reporter {
	switch cfg.Output.Trace {
	case config.TraceJSON:
		return trace.NewJSON(out, run, cfg.Output.Every)
	case config.TraceNone:
		return trace.Discard{}
	default:
		return trace.NewText(out, algo, cfg.Output.Every, cfg.Output.Tours)
	}
}

func runSearch(ctx context.Context, out, errOut io.Writer, path string, cfg config.Config) error {
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID[:8])

	costs, err := matrix.ParseFile(path)
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	src, seed, err := source(cfg)
	if err != nil {
		return err
	}
	eng, err := tsp.NewEngine(costs, src, params, tsp.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("starting search",
		"algo", params.Algo.String(), "nodes", costs.Nodes(), "iterations", cfg.Iterations, "seed", seed)

	var (
		rep      = newReporter(out, cfg, params.Algo, runID)
		stats    = metrics.New(params.Algo.String(), runID)
		progress = rate.Sometimes{Interval: progressInterval}
		watch    = newStopwatch(logger)
	)
	res, runErr := eng.Run(ctx, cfg.Iterations, func(r tsp.Record) error {
		stats.Observe(r)
		progress.Do(func() {
			logger.Info("progress", "iteration", r.Iteration, "cost", r.Cost, "best", r.BestCost)
		})

		return rep.Record(r)
	})
	interrupted := errors.Is(runErr, context.Canceled)
	if runErr != nil && !interrupted {
		return runErr
	}
	if interrupted {
		logger.Warn("search interrupted", "iterations", res.Iterations)
	} else {
		watch.done(fmt.Sprintf("completed %d iterations", res.Iterations))
	}

	summary := trace.Summary{
		RunID:       runID,
		Algo:        params.Algo,
		Nodes:       costs.Nodes(),
		Seed:        seed,
		Result:      res,
		Elapsed:     watch.elapsed(),
		Interrupted: interrupted,
	}
	if err = rep.Close(summary); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	if err = writeOutputs(context.WithoutCancel(ctx), logger, eng.Model(), cfg.Output, stats, res); err != nil {
		return err
	}
	printSummary(errOut, summary)

	return runErr
}

// writeOutputs stores metrics and drawings of the best tour.
func writeOutputs(ctx context.Context, logger *log.Logger, model *tsp.CostModel, out config.Output, stats *metrics.Search, res tsp.Result) error {
	if out.Metrics != "" {
		if err := stats.WriteTextfile(out.Metrics); err != nil {
			return err
		}
		logger.Debug("wrote metrics", "path", out.Metrics)
	}
	if out.DOT == "" && out.SVG == "" {
		return nil
	}

	dot := render.ToDOT(model, res.BestTour, render.Options{
		Title: fmt.Sprintf("best cost %d", res.BestCost),
		Costs: true,
	})
	if out.DOT != "" {
		if err := os.WriteFile(out.DOT, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write DOT: %w", err)
		}
		logger.Debug("wrote DOT", "path", out.DOT)
	}
	if out.SVG != "" {
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		if err = os.WriteFile(out.SVG, svg, 0o644); err != nil {
			return fmt.Errorf("write SVG: %w", err)
		}
		logger.Debug("wrote SVG", "path", out.SVG)
	}

	return nil
}
