package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/triad/balance"
	"github.com/katalvlaran/triad/builder"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one universe to convergence",
		Long: `Build a random signed network (friends = Erdős–Rényi edges) and flip
unstable edges until every triangle is stable, then print the two factions.

Examples:
  triad run --nodes 12 --policy forced --enemy-priority 0.8
  triad run --nodes 30 --policy passive --verify 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applySimulationFlags(cmd, &a.cfg.Simulation)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			verify, _ := cmd.Flags().GetInt("verify")
			return a.runOne(cmd, verify)
		},
	}
	addSimulationFlags(cmd.Flags())
	cmd.Flags().Int("verify", 0, "recheck every counter each N rounds (0 = never)")

	return cmd
}

func (a *app) runOne(cmd *cobra.Command, verify int) error {
	s := a.cfg.Simulation
	seed := a.seed()

	policy, err := balance.ParsePolicy(s.Policy, s.EnemyPriority)
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(s.Nodes, s.FriendProb),
	)
	if err != nil {
		return fmt.Errorf("building input graph: %w", err)
	}
	u, err := balance.New(g,
		balance.WithPolicy(policy),
		balance.WithSeed(seed+1),
		balance.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	friends, enemies := u.Graph().Counts()
	a.logger.Info("universe ready",
		"nodes", s.Nodes, "policy", policy.Name(), "friends", friends, "enemies", enemies,
		"unstable", u.UnstableEdges(), "seed", seed)

	sum, err := u.Run(cmd.Context(),
		balance.WithMaxRounds(s.MaxRounds),
		balance.WithVerifyEvery(verify),
	)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rounds=%d flips=%d converged=%t elapsed=%s\n", sum.Rounds, sum.Flips, sum.Converged, sum.Elapsed)
	if errors.Is(err, balance.ErrRoundLimit) {
		a.logger.Warn("round limit reached", "unstable", u.UnstableEdges())
		return nil
	}
	if err != nil {
		return err
	}

	f, err := u.Factions()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "factions=%s\n", f.Split())
	for i, grp := range f.Groups {
		fmt.Fprintf(out, "  %d: %v\n", i, grp)
	}

	return nil
}
