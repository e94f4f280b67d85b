// Command triad runs structural-balance simulations, batches of them, and
// opinion-diffusion elections.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/triad/config"
	"github.com/katalvlaran/triad/logging"
)

var version = "0.1.0-dev"

// app carries state shared by all subcommands after the root PreRun.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "triad",
		Short: "Structural balance simulator",
		Long: `triad evolves a complete signed network (every pair is friend or enemy)
toward structural balance by flipping edges of unstable triangles.

Settings come from defaults, an optional YAML file (--config), TRIAD_*
environment variables and finally command-line flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().Int64("seed", 0, "RNG seed (0 = from clock)")

	rootCmd.AddCommand(
		newRunCmd(a),
		newBatchCmd(a),
		newVoteCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// init loads configuration, applies global flags and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.Logging.Level = f.Value.String()
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Simulation.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(a.errOut, level)

	return nil
}

// seed returns the configured seed, drawing one from the clock when unset.
func (a *app) seed() int64 {
	if a.cfg.Simulation.Seed == 0 {
		a.cfg.Simulation.Seed = time.Now().UnixNano()
		a.logger.Info("seeded from clock", "seed", a.cfg.Simulation.Seed)
	}
	return a.cfg.Simulation.Seed
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "triad version %s\n", version)
		},
	}
}
