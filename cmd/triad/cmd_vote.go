package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/triad/opinion"
)

func newVoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Simulate opinion diffusion on a social network and hold elections",
		Long: `Place voters on a Barabási–Albert network, let expressed opinions drift
toward charismatic acquaintances and back toward each voter's own view, and
print the plurality result after every diffusion round.

Examples:
  triad vote --voters 500 --candidates 4 --rounds 20
  triad vote --max-stubbornness 0.2 --max-charisma 0.9 --fixed-candidates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o := &a.cfg.Opinion
			fs := cmd.Flags()
			if fs.Changed("voters") {
				o.Voters, _ = fs.GetInt("voters")
			}
			if fs.Changed("candidates") {
				o.Candidates, _ = fs.GetInt("candidates")
			}
			if fs.Changed("ba-m") {
				o.AttachEdges, _ = fs.GetInt("ba-m")
			}
			if fs.Changed("adjustments") {
				o.Adjustments, _ = fs.GetInt("adjustments")
			}
			if fs.Changed("rounds") {
				o.Rounds, _ = fs.GetInt("rounds")
			}
			if fs.Changed("max-stubbornness") {
				o.MaxStubbornness, _ = fs.GetFloat64("max-stubbornness")
			}
			if fs.Changed("max-charisma") {
				o.MaxCharisma, _ = fs.GetFloat64("max-charisma")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			fixed, _ := fs.GetBool("fixed-candidates")
			return a.runVote(cmd, fixed)
		},
	}
	fs := cmd.Flags()
	fs.Int("voters", 0, "number of voters")
	fs.Int("candidates", 0, "number of candidates")
	fs.Int("ba-m", 0, "Barabási–Albert links per new voter")
	fs.Int("adjustments", 0, "opinion adjustments per round")
	fs.Int("rounds", 0, "diffusion rounds")
	fs.Float64("max-stubbornness", 0, "upper bound of voter stubbornness")
	fs.Float64("max-charisma", 0, "upper bound of voter charisma")
	fs.Bool("fixed-candidates", false, "space candidate policies evenly instead of at random")

	return cmd
}

func (a *app) runVote(cmd *cobra.Command, fixed bool) error {
	o := a.cfg.Opinion
	var cf opinion.CandidateFactory = opinion.UniformCandidates{}
	if fixed {
		cf = opinion.FixedCandidates{}
	}
	w, err := opinion.NewBarabasiAlbertWorld(
		opinion.Population{Voters: o.Voters, Candidates: o.Candidates, AttachEdges: o.AttachEdges},
		opinion.UniformVoters{Stubbornness: opinion.Unit, Charisma: opinion.Unit},
		cf,
		opinion.Plurality{},
		a.seed(),
	)
	if err != nil {
		return err
	}
	if err := w.ScaleTraits(o.MaxStubbornness, o.MaxCharisma); err != nil {
		return err
	}
	w.SetLogger(a.logger)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "candidates:")
	for _, c := range w.Candidates() {
		fmt.Fprintf(out, "  %d: policy %.3f\n", c.ID, c.Policy)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUND\tWINNER\tVOTES\tRESULT")
	printRound(tw, 0, w.Result())
	for r := 1; r <= o.Rounds; r++ {
		if err := cmd.Context().Err(); err != nil {
			tw.Flush()
			return err
		}
		if err := w.Diffuse(o.Adjustments); err != nil {
			tw.Flush()
			return err
		}
		printRound(tw, r, w.Result())
	}

	return tw.Flush()
}

func printRound(tw *tabwriter.Writer, round int, res []opinion.Tally) {
	line := ""
	for i, t := range res {
		if i > 0 {
			line += " "
		}
		line += fmt.Sprintf("%d:%d", t.Candidate.ID, t.Votes)
	}
	fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", round, res[0].Candidate.ID, res[0].Votes, line)
}
