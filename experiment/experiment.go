// SPDX-License-Identifier: MIT
// Package: triad/experiment
//
// experiment.go - batch configuration, worker pool and aggregation.

package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/triad/balance"
	"github.com/katalvlaran/triad/builder"
	"github.com/katalvlaran/triad/metrics"
)

// universeSeedOffset separates the universe RNG stream from the graph one.
const universeSeedOffset = 1 << 32

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// Config describes one batch.
type Config struct {
	Nodes         int
	FriendProb    float64
	Policy        string
	EnemyPriority float64
	Runs          int
	Workers       int // 0 ⇒ GOMAXPROCS
	MaxRounds     int // per run; 0 ⇒ no cap
	Seed          int64
}

// Validate checks ranges and the policy name.
func (c Config) Validate() error {
	switch {
	case c.Nodes < 1:
		return fmt.Errorf("%w: nodes=%d < 1", ErrInvalidConfig, c.Nodes)
	case c.FriendProb < 0 || c.FriendProb > 1:
		return fmt.Errorf("%w: friend_prob=%g not in [0,1]", ErrInvalidConfig, c.FriendProb)
	case c.Runs < 1:
		return fmt.Errorf("%w: runs=%d < 1", ErrInvalidConfig, c.Runs)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers=%d < 0", ErrInvalidConfig, c.Workers)
	case c.MaxRounds < 0:
		return fmt.Errorf("%w: max_rounds=%d < 0", ErrInvalidConfig, c.MaxRounds)
	}
	if _, err := balance.ParsePolicy(c.Policy, c.EnemyPriority); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Result is the outcome of one run.
type Result struct {
	Run       int
	Rounds    int
	Flips     int
	Converged bool
	Split     balance.Split
	Elapsed   time.Duration
}

// Report aggregates a batch.
type Report struct {
	BatchID      string
	Config       Config
	Results      []Result
	Converged    int
	MeanRounds   float64
	MeanFlips    float64
	Distribution map[balance.Split]int
	Elapsed      time.Duration
}

// Splits returns the keys of Distribution in ascending (Small, Large) order.
func (r *Report) Splits() []balance.Split {
	out := make([]balance.Split, 0, len(r.Distribution))
	for s := range r.Distribution {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Small != out[j].Small {
			return out[i].Small < out[j].Small
		}
		return out[i].Large < out[j].Large
	})

	return out
}

// Option configures Run.
type Option func(*runner)

// WithRecorder feeds every finished run into rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(r *runner) { r.rec = rec }
}

// WithLogger sets the logger for per-run debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

type runner struct {
	cfg    Config
	rec    *metrics.Recorder
	logger *slog.Logger
}

// Run executes cfg.Runs universes on cfg.Workers goroutines.
//
// A run that hits MaxRounds is reported with Converged=false and does not
// fail the batch. A fatal universe error or ctx cancellation aborts the batch
// and is returned.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &runner{cfg: cfg, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	batchID := uuid.NewString()
	logger := r.logger.With("batch", batchID)

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	results := make([]Result, cfg.Runs)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Runs; i++ {
		g.Go(func() error {
			res, err := r.runOne(gCtx, i)
			if err != nil {
				return fmt.Errorf("experiment: run %d: %w", i, err)
			}
			results[i] = res
			logger.Debug("run finished",
				"run", i, "rounds", res.Rounds, "flips", res.Flips,
				"converged", res.Converged, "split", res.Split.String())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := aggregate(results)
	rep.BatchID = batchID
	rep.Config = cfg
	rep.Elapsed = time.Since(start)
	logger.Debug("batch finished", "runs", cfg.Runs, "converged", rep.Converged, "elapsed", rep.Elapsed)

	return rep, nil
}

// runOne builds and drives universe i.
func (r *runner) runOne(ctx context.Context, i int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	seed := r.cfg.Seed + int64(i)
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(r.cfg.Nodes, r.cfg.FriendProb),
	)
	if err != nil {
		return Result{}, err
	}
	policy, err := balance.ParsePolicy(r.cfg.Policy, r.cfg.EnemyPriority)
	if err != nil {
		return Result{}, err
	}
	u, err := balance.New(g, balance.WithPolicy(policy), balance.WithSeed(seed+universeSeedOffset))
	if err != nil {
		return Result{}, err
	}

	s, err := u.Run(ctx, balance.WithMaxRounds(r.cfg.MaxRounds))
	res := Result{Run: i, Rounds: s.Rounds, Flips: s.Flips, Converged: s.Converged, Elapsed: s.Elapsed}
	switch {
	case err == nil:
	case errors.Is(err, balance.ErrRoundLimit):
		r.rec.ObserveRun(metrics.OutcomeRoundLimit, s.Rounds, s.Flips)
		return res, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		r.rec.ObserveRun(metrics.OutcomeCanceled, s.Rounds, s.Flips)
		return res, err
	default:
		r.rec.ObserveRun(metrics.OutcomeFailed, s.Rounds, s.Flips)
		return res, err
	}

	f, err := u.Factions()
	if err != nil {
		r.rec.ObserveRun(metrics.OutcomeFailed, s.Rounds, s.Flips)
		return res, err
	}
	res.Split = f.Split()
	r.rec.ObserveRun(metrics.OutcomeConverged, s.Rounds, s.Flips)
	r.rec.ObserveSplit(res.Split.Small, r.cfg.Nodes)

	return res, nil
}

// aggregate computes the converged-run statistics.
func aggregate(results []Result) *Report {
	rep := &Report{Results: results, Distribution: make(map[balance.Split]int)}
	var rounds, flips int
	for _, res := range results {
		if !res.Converged {
			continue
		}
		rep.Converged++
		rounds += res.Rounds
		flips += res.Flips
		rep.Distribution[res.Split]++
	}
	if rep.Converged > 0 {
		rep.MeanRounds = float64(rounds) / float64(rep.Converged)
		rep.MeanFlips = float64(flips) / float64(rep.Converged)
	}

	return rep
}
