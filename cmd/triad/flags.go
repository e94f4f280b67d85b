package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/triad/config"
)

// addSimulationFlags registers the flags shared by run and batch.
func addSimulationFlags(fs *pflag.FlagSet) {
	fs.Int("nodes", 0, "number of nodes")
	fs.Float64("friend-prob", 0, "probability that a pair starts as friends")
	fs.String("policy", "", "transition policy: passive or forced")
	fs.Float64("enemy-priority", 0, "forced policy: probability of sparing the enemy edge")
	fs.Int("max-rounds", 0, "round cap per run (0 = none)")
}

// applySimulationFlags copies explicitly set flags over s.
func applySimulationFlags(cmd *cobra.Command, s *config.SimulationConfig) {
	fs := cmd.Flags()
	if fs.Changed("nodes") {
		s.Nodes, _ = fs.GetInt("nodes")
	}
	if fs.Changed("friend-prob") {
		s.FriendProb, _ = fs.GetFloat64("friend-prob")
	}
	if fs.Changed("policy") {
		s.Policy, _ = fs.GetString("policy")
	}
	if fs.Changed("enemy-priority") {
		s.EnemyPriority, _ = fs.GetFloat64("enemy-priority")
	}
	if fs.Changed("max-rounds") {
		s.MaxRounds, _ = fs.GetInt("max-rounds")
	}
}
