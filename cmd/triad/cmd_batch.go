package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/triad/experiment"
	"github.com/katalvlaran/triad/metrics"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run many independent universes and report the faction distribution",
		Long: `Run --runs universes in parallel, each on its own random input graph,
and print how often each faction split occurred.

Examples:
  triad batch --nodes 10 --runs 1000 --workers 8
  triad batch --policy passive --metrics-file /var/lib/node_exporter/triad.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applySimulationFlags(cmd, &a.cfg.Simulation)
			fs := cmd.Flags()
			if fs.Changed("runs") {
				a.cfg.Batch.Runs, _ = fs.GetInt("runs")
			}
			if fs.Changed("workers") {
				a.cfg.Batch.Workers, _ = fs.GetInt("workers")
			}
			if fs.Changed("metrics-file") {
				a.cfg.Batch.MetricsFile, _ = fs.GetString("metrics-file")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runBatch(cmd)
		},
	}
	addSimulationFlags(cmd.Flags())
	cmd.Flags().Int("runs", 0, "number of universes")
	cmd.Flags().Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().String("metrics-file", "", "write Prometheus textfile metrics here")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command) error {
	s, b := a.cfg.Simulation, a.cfg.Batch
	cfg := experiment.Config{
		Nodes:         s.Nodes,
		FriendProb:    s.FriendProb,
		Policy:        s.Policy,
		EnemyPriority: s.EnemyPriority,
		Runs:          b.Runs,
		Workers:       b.Workers,
		MaxRounds:     s.MaxRounds,
		Seed:          a.seed(),
	}

	var rec *metrics.Recorder
	if b.MetricsFile != "" {
		rec = metrics.NewRecorder()
	}
	rep, err := experiment.Run(cmd.Context(), cfg,
		experiment.WithRecorder(rec),
		experiment.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	if err := rec.WriteTextfile(b.MetricsFile); err != nil {
		return err
	}
	writeReport(cmd, rep)

	return nil
}

func writeReport(cmd *cobra.Command, rep *experiment.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "batch %s: %d/%d converged, mean rounds %.1f, mean flips %.1f, elapsed %s\n",
		rep.BatchID, rep.Converged, len(rep.Results), rep.MeanRounds, rep.MeanFlips, rep.Elapsed)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SPLIT\tRUNS\tSHARE")
	for _, split := range rep.Splits() {
		n := rep.Distribution[split]
		fmt.Fprintf(tw, "%s\t%d\t%.3f\n", split, n, float64(n)/float64(rep.Converged))
	}
	tw.Flush()
}
