// Package config loads run configuration for the tourlab CLI.
//
// A configuration file is YAML (.yaml, .yml) or TOML (.toml). Loading starts
// from the preset of the algorithm named in the file, so a file only lists
// the values it changes:
//
//	algorithm: tabu-enhanced
//	iterations: 5000
//	tabu:
//	  capacity: 40
//
// Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourlab/tsp"
)

var (
	// ErrInvalid is returned when a configuration value is out of range.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrUnsupported is returned for configuration files with an unknown extension.
	ErrUnsupported = errors.New("config: unsupported file type")
)

// Trace formats.
const (
	TraceText = "text"
	TraceJSON = "json"
	TraceNone = "none"
)

// anyInstance is an instance size large enough that only instance-independent
// limits apply when validating without a cost table.
const anyInstance = 1 << 16

// Config is the complete run configuration.
type Config struct {
	Algorithm  string `yaml:"algorithm" toml:"algorithm"`
	Iterations int    `yaml:"iterations" toml:"iterations"`
	Seed       uint64 `yaml:"seed" toml:"seed"`       // 0 picks a time-based seed in the CLI
	Moves      string `yaml:"moves" toml:"moves"`     // exchange | reversal
	Start      string `yaml:"start" toml:"start"`     // random | greedy
	Workers    int    `yaml:"workers" toml:"workers"` // 0 = GOMAXPROCS
	Replay     string `yaml:"replay" toml:"replay"`   // path to recorded random values

	Annealing Annealing `yaml:"annealing" toml:"annealing"`
	Tabu      Tabu      `yaml:"tabu" toml:"tabu"`
	Output    Output    `yaml:"output" toml:"output"`
}

// Annealing holds simulated-annealing knobs.
type Annealing struct {
	Phi              float64 `yaml:"phi" toml:"phi"`
	Mu               float64 `yaml:"mu" toml:"mu"`
	CooldownTested   int     `yaml:"cooldown_tested" toml:"cooldown_tested"`
	CooldownAccepted int     `yaml:"cooldown_accepted" toml:"cooldown_accepted"`
}

// Tabu holds tabu-search knobs.
type Tabu struct {
	Capacity         int     `yaml:"capacity" toml:"capacity"`
	RebootAfter      int     `yaml:"reboot_after" toml:"reboot_after"`
	IntensifyEvery   int     `yaml:"intensify_every" toml:"intensify_every"`
	PerturbTries     int     `yaml:"perturb_tries" toml:"perturb_tries"`
	PerturbFraction  float64 `yaml:"perturb_fraction" toml:"perturb_fraction"`
	RepetitionWeight float64 `yaml:"repetition_weight" toml:"repetition_weight"`
}

// Output selects what a run writes besides the summary.
type Output struct {
	Trace   string `yaml:"trace" toml:"trace"`     // text | json | none
	Every   int    `yaml:"every" toml:"every"`     // trace every n-th iteration
	Tours   bool   `yaml:"tours" toml:"tours"`     // include tours in text trace lines
	Metrics string `yaml:"metrics" toml:"metrics"` // Prometheus textfile path
	DOT     string `yaml:"dot" toml:"dot"`         // Graphviz DOT path for the best tour
	SVG     string `yaml:"svg" toml:"svg"`         // rendered SVG path for the best tour
}

// Default returns the preset configuration for algo.
func Default(algo tsp.Algo) Config {
	p := tsp.DefaultParams(algo)

	return Config{
		Algorithm:  algo.String(),
		Iterations: tsp.DefaultIterations,
		Moves:      p.Moves.String(),
		Start:      p.Start.String(),
		Annealing: Annealing{
			Phi:              p.Phi,
			Mu:               p.Mu,
			CooldownTested:   p.CooldownTested,
			CooldownAccepted: p.CooldownAccepted,
		},
		Tabu: Tabu{
			Capacity:         p.TabuCapacity,
			RebootAfter:      p.RebootAfter,
			IntensifyEvery:   p.IntensifyEvery,
			PerturbTries:     p.PerturbTries,
			PerturbFraction:  p.PerturbFraction,
			RepetitionWeight: p.RepetitionWeight,
		},
		Output: Output{Trace: TraceText, Every: 1},
	}
}

// Load reads path, overlaying it on the preset of the algorithm it names
// (annealing when it names none).
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}

	var decode func(data []byte, v any, strict bool) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = decodeYAML
	case ".toml":
		decode = decodeTOML
	default:
		return Config{}, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}

	var head struct {
		Algorithm string `yaml:"algorithm" toml:"algorithm"`
	}
	if err = decode(data, &head, false); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	algo := tsp.Annealing
	if head.Algorithm != "" {
		if algo, err = tsp.ParseAlgo(head.Algorithm); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := Default(algo)
	if err = decode(data, &cfg, true); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func decodeYAML(data []byte, v any, strict bool) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: yaml: %w", err)
	}

	return nil
}

func decodeTOML(data []byte, v any, strict bool) error {
	md, err := toml.Decode(string(data), v)
	if err != nil {
		return fmt.Errorf("config: toml: %w", err)
	}
	if undecoded := md.Undecoded(); strict && len(undecoded) > 0 {
		return fmt.Errorf("config: toml: unknown key %q: %w", undecoded[0].String(), ErrInvalid)
	}

	return nil
}

// Params maps c onto engine parameters.
func (c Config) Params() (tsp.Params, error) {
	algo, err := tsp.ParseAlgo(c.Algorithm)
	if err != nil {
		return tsp.Params{}, err
	}
	moves, err := tsp.ParseMoveKind(c.Moves)
	if err != nil {
		return tsp.Params{}, err
	}
	start, err := tsp.ParseStartKind(c.Start)
	if err != nil {
		return tsp.Params{}, err
	}

	return tsp.Params{
		Algo:             algo,
		Moves:            moves,
		Start:            start,
		Phi:              c.Annealing.Phi,
		Mu:               c.Annealing.Mu,
		CooldownTested:   c.Annealing.CooldownTested,
		CooldownAccepted: c.Annealing.CooldownAccepted,
		TabuCapacity:     c.Tabu.Capacity,
		RebootAfter:      c.Tabu.RebootAfter,
		IntensifyEvery:   c.Tabu.IntensifyEvery,
		PerturbTries:     c.Tabu.PerturbTries,
		PerturbFraction:  c.Tabu.PerturbFraction,
		RepetitionWeight: c.Tabu.RepetitionWeight,
		Workers:          c.Workers,
	}, nil
}

// Validate checks everything that does not depend on the instance size.
// Limits tied to N (tabu capacity below N(N-1)/2) are enforced by tsp.NewEngine.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("iterations=%d, want ≥ 0: %w", c.Iterations, ErrInvalid)
	}
	switch c.Output.Trace {
	case TraceText, TraceJSON, TraceNone:
	default:
		return fmt.Errorf("output.trace=%q, want text|json|none: %w", c.Output.Trace, ErrInvalid)
	}
	if c.Output.Every < 1 {
		return fmt.Errorf("output.every=%d, want ≥ 1: %w", c.Output.Every, ErrInvalid)
	}
	p, err := c.Params()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err = tsp.ValidateParams(p, anyInstance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}
