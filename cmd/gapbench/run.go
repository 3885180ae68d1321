package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/lucasgdosr/gaparray/internal/bench"
	"github.com/lucasgdosr/gaparray/internal/logging"
	"github.com/spf13/cobra"
)

type runConfig struct {
	bench     bench.Config
	csvPath   string
	logFormat string
	logLevel  string
}

func defaultRunConfig() runConfig {
	return runConfig{
		bench: bench.Config{
			Ops:         10000,
			Iterations:  10,
			Runs:        8,
			Seed:        1,
			Parallelism: 1,
		},
		logFormat: "text",
		logLevel:  "info",
	}
}

func defaultListConfig() runConfig {
	c := defaultRunConfig()
	c.bench.Sizes = []int{10, 100, 1000, 5000, 10000}
	return c
}

func defaultQueueConfig() runConfig {
	c := defaultRunConfig()
	c.bench.Sizes = []int{0, 100, 1000, 10000, 50000, 100000}
	c.bench.Ops = 40000
	c.bench.Iterations = 1
	return c
}

func defaultParallelConfig() runConfig {
	c := defaultRunConfig()
	c.bench.Sizes = []int{1000, 10000}
	c.bench.Ops = 1000
	c.bench.Iterations = 1
	c.bench.Runs = 3
	return c
}

func (c runConfig) logger() (*logging.Logger, error) {
	return logging.New(os.Stderr, c.logFormat, c.logLevel)
}

func makeWorkloadCommand(name, short string, config runConfig) *cobra.Command {
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		w, err := bench.Lookup(name)
		if err != nil {
			return err
		}
		logger, err := config.logger()
		if err != nil {
			return err
		}
		r, err := bench.NewRunner(config.bench, logger)
		if err != nil {
			return err
		}

		report, err := r.Run(cmd.Context(), w)
		if err != nil {
			return err
		}

		bench.RenderTable(cmd.OutOrStdout(), report)
		if config.csvPath == "" {
			return nil
		}
		return writeCSVFile(config.csvPath, report)
	}

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Long:  short + ` Every container sees the same seeded operations, and each case is averaged over --runs measurements.`,
		Args:  cobra.NoArgs,
		RunE:  runCmdFunc,
	}
	cmd.Flags().IntSliceVar(&config.bench.Sizes, "sizes", config.bench.Sizes, "initial container sizes, or deque counts for the parallel workload")
	cmd.Flags().IntVar(&config.bench.Ops, "ops", config.bench.Ops, "random operations per iteration")
	cmd.Flags().IntVar(&config.bench.Iterations, "iterations", config.bench.Iterations, "fill-then-operate cycles per run (list workload only)")
	cmd.Flags().IntVar(&config.bench.Runs, "runs", config.bench.Runs, "measurements averaged per case")
	cmd.Flags().Uint64Var(&config.bench.Seed, "seed", config.bench.Seed, "seed of the first run, later runs use seed+1, seed+2 and so on")
	cmd.Flags().IntVar(&config.bench.Parallelism, "parallelism", config.bench.Parallelism, "cases measured at once, keep at 1 for stable timings")
	cmd.Flags().StringSliceVar(&config.bench.Containers, "containers", nil, fmt.Sprintf("containers to measure, default all of the workload's (%s, %s, %s, %s)",
		bench.GapArray, bench.Slice, bench.LinkedList, bench.RingBuffer))
	cmd.Flags().StringVar(&config.csvPath, "csv", config.csvPath, "also write the results to this CSV file")
	cmd.Flags().StringVar(&config.logFormat, "log-format", config.logFormat, "log format, text or json")
	cmd.Flags().StringVar(&config.logLevel, "log-level", config.logLevel, "log level, debug shows every case")
	return cmd
}

func writeCSVFile(path string, report *bench.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating csv file")
	}
	defer func() {
		err = errors.CombineErrors(err, f.Close())
	}()
	return bench.WriteCSV(f, report)
}

func makeVerifyCommand() *cobra.Command {
	var (
		seed uint64 = 1
		ops         = 100000
	)
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		if ops < 0 {
			return errors.Newf("ops %d is negative", ops)
		}
		if err := bench.VerifyQueue(seed, ops); err != nil {
			return errors.Wrap(err, "queue")
		}
		if err := bench.VerifySequence(seed, ops); err != nil {
			return errors.Wrap(err, "sequence")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d queue and %d sequence operations agree across containers\n", ops, ops)
		return nil
	}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every container produces the same results.",
		Long:  `Replay one seeded stream of queue operations and one of positional edits on every container, failing on the first difference.`,
		Args:  cobra.NoArgs,
		RunE:  runCmdFunc,
	}
	cmd.Flags().Uint64Var(&seed, "seed", seed, "random seed")
	cmd.Flags().IntVar(&ops, "ops", ops, "operations per check")
	return cmd
}
