package balance

import (
	"context"
	"fmt"
	"time"
)

// Summary describes a Run. Rounds and Flips are cumulative for the universe.
type Summary struct {
	Rounds    int
	Flips     int
	Converged bool
	Elapsed   time.Duration
}

// Run steps the universe until it converges. ctx is checked between rounds
// only; a round is never interrupted.
//
// A universe that converged on its last allowed round still reports
// convergence: the terminal Step does not count as a round.
//
// Errors: ctx.Err(), ErrRoundLimit when WithMaxRounds is exhausted, or the
// fatal Step/Verify error. The Summary is filled in every case.
func (u *Universe) Run(ctx context.Context, opts ...RunOption) (Summary, error) {
	var rs runSettings
	for _, opt := range opts {
		opt(&rs)
	}

	start := time.Now()
	summary := func(converged bool) Summary {
		return Summary{Rounds: u.rounds, Flips: u.flips, Converged: converged, Elapsed: time.Since(start)}
	}

	for executed := 0; ; {
		if err := ctx.Err(); err != nil {
			return summary(false), err
		}
		if rs.maxRounds > 0 && executed >= rs.maxRounds && !u.Converged() {
			return summary(false), fmt.Errorf("balance: Run: %d rounds, %d unstable edges left: %w",
				executed, u.m.UnstableCount(), ErrRoundLimit)
		}

		o, err := u.Step()
		if err != nil {
			return summary(false), err
		}
		if rs.onRound != nil {
			rs.onRound(u.rounds, o)
		}
		if o.Kind == Converged {
			if rs.verifyEvery > 0 {
				if err = u.Verify(); err != nil {
					return summary(false), u.fail(err)
				}
			}
			u.logger.Debug("converged", "rounds", u.rounds, "flips", u.flips)
			return summary(true), nil
		}

		executed++
		if rs.verifyEvery > 0 && executed%rs.verifyEvery == 0 {
			if err = u.Verify(); err != nil {
				return summary(false), u.fail(err)
			}
		}
	}
}
