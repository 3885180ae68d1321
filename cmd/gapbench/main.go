package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func makeGapbenchCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     "gapbench [command] (flags)",
		Short:   "gapbench compares gaparray with slices, linked lists and ring buffers.",
		Version: "v0.1",
		Long: `gapbench compares gaparray with slices, linked lists and ring buffers under random workloads.

Typical usage:
    gapbench list --sizes=100,1000 --csv=list.csv
        Random positional inserts, removes and reads, averaged over 8 runs.

    gapbench queue --containers=gaparray,ringbuffer
        Push-heavy, mixed and pop-heavy FIFO phases.

    gapbench parallel --sizes=1000
        Thousands of small deques, each driven from its own goroutine.

    gapbench verify --ops=100000
        Replays the same random operations on every container and fails on the first difference.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	command.AddCommand(makeWorkloadCommand("list", "Run the positional list workload.", defaultListConfig()))
	command.AddCommand(makeWorkloadCommand("queue", "Run the FIFO queue workload.", defaultQueueConfig()))
	command.AddCommand(makeWorkloadCommand("parallel", "Run the parallel deque workload.", defaultParallelConfig()))
	command.AddCommand(makeVerifyCommand())

	return command
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	cmd := makeGapbenchCommand()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Printf("ERROR: %+v", err)
		os.Exit(1)
	}
}
