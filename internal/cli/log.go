// Package cli implements the tourlab command-line interface.
//
// # Commands
//
//   - run: search a cost table with annealing, tabu, tabu-enhanced or descent
//   - inspect: report instance statistics and the greedy baseline tour
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// surfaces engine events (cooldowns, reboots, new bests). Loggers travel
// through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a timestamped logger writing to w at the given level.
// Timestamps look like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stopwatch logs completion of an operation together with its elapsed time.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func newStopwatch(l *log.Logger) *stopwatch {
	return &stopwatch{logger: l, start: time.Now()}
}

// elapsed returns the time since the stopwatch started.
func (s *stopwatch) elapsed() time.Duration { return time.Since(s.start) }

// done logs msg with the elapsed time rounded to the millisecond.
func (s *stopwatch) done(msg string) {
	s.logger.Infof("%s (%s)", msg, s.elapsed().Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
