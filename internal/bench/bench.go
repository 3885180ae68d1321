// Package bench measures gaparray against reference containers under random
// workloads.
package bench

import (
	"context"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/lucasgdosr/gaparray/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Config controls a benchmark run.
type Config struct {
	// Sizes are the initial container sizes, or container counts for the
	// parallel workload.
	Sizes []int
	// Ops is the number of random operations per iteration.
	Ops int
	// Iterations repeats the fill-then-operate cycle on the same container.
	Iterations int
	// Runs is how many measurements are averaged per case.
	Runs int
	Seed uint64
	// Parallelism caps how many cases are measured at once.
	Parallelism int
	// Containers restricts the run to these names. Empty means all.
	Containers []string
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("at least one size is required")
	}
	for _, s := range c.Sizes {
		if s < 0 {
			return errors.Newf("size %d is negative", s)
		}
	}
	if c.Ops < 0 {
		return errors.Newf("ops %d is negative", c.Ops)
	}
	if c.Iterations < 1 {
		return errors.Newf("iterations must be at least 1, got %d", c.Iterations)
	}
	if c.Runs < 1 {
		return errors.Newf("runs must be at least 1, got %d", c.Runs)
	}
	if c.Parallelism < 1 {
		return errors.Newf("parallelism must be at least 1, got %d", c.Parallelism)
	}
	return nil
}

// Workload generates operations against one kind of container.
type Workload interface {
	Name() string
	// Phases names the timings Measure returns, in order.
	Phases() []string
	Containers() []string
	// Measure times one run against a fresh container.
	Measure(ctx context.Context, container string, size int, cfg Config, seed uint64) ([]time.Duration, error)
}

// Result is the averaged timing of one (size, container) case.
type Result struct {
	Size      int
	Container string
	// Avg holds one duration per phase.
	Avg []time.Duration
}

// Total is the sum of every phase.
func (r Result) Total() time.Duration {
	var total time.Duration
	for _, d := range r.Avg {
		total += d
	}
	return total
}

// Report is everything a Runner measured for a workload.
type Report struct {
	Workload string
	Phases   []string
	Results  []Result
}

// Runner measures every case of a workload.
type Runner struct {
	cfg    Config
	logger *logging.Logger
}

// NewRunner validates cfg. A nil logger discards output.
func NewRunner(cfg Config, logger *logging.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if logger == nil {
		logger = logging.NoopLogger()
	}
	return &Runner{cfg: cfg, logger: logger}, nil
}

// Run measures w for every configured size and container. Results are
// ordered by size, then by the workload's container order.
func (r *Runner) Run(ctx context.Context, w Workload) (*Report, error) {
	containers, err := r.selectContainers(w)
	if err != nil {
		return nil, err
	}
	logger := r.logger.WithWorkload(w.Name())
	start := time.Now()

	results := make([]Result, len(r.cfg.Sizes)*len(containers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for si, size := range r.cfg.Sizes {
		for ci, c := range containers {
			g.Go(func() error {
				avg, err := r.measure(ctx, w, c, size)
				res := Result{Size: size, Container: c, Avg: avg}
				logger.WithContainer(c).LogCase(ctx, size, res.Total(), err)
				if err != nil {
					return errors.Wrapf(err, "%s with size %d", c, size)
				}
				results[si*len(containers)+ci] = res
				return nil
			})
		}
	}
	err = g.Wait()
	logger.LogRun(ctx, len(results), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &Report{Workload: w.Name(), Phases: w.Phases(), Results: results}, nil
}

func (r *Runner) selectContainers(w Workload) ([]string, error) {
	all := w.Containers()
	if len(r.cfg.Containers) == 0 {
		return all, nil
	}
	for _, c := range r.cfg.Containers {
		if !slices.Contains(all, c) {
			return nil, errors.Newf("workload %s has no container %q, choose from %v", w.Name(), c, all)
		}
	}
	// Keep the workload's order so reports line up across runs.
	var selected []string
	for _, c := range all {
		if slices.Contains(r.cfg.Containers, c) {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

func (r *Runner) measure(ctx context.Context, w Workload, container string, size int) ([]time.Duration, error) {
	sums := make([]time.Duration, len(w.Phases()))
	for run := range r.cfg.Runs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Every container sees the same seeds, hence the same operations.
		d, err := w.Measure(ctx, container, size, r.cfg, r.cfg.Seed+uint64(run))
		if err != nil {
			return nil, err
		}
		for i := range d {
			sums[i] += d[i]
		}
	}
	for i := range sums {
		sums[i] /= time.Duration(r.cfg.Runs)
	}
	return sums, nil
}
