// SPDX-License-Identifier: MIT
// Package: triad/balance
//
// universe.go - one simulation: signed graph, maintainer, policy, RNG.
//
// Contract:
//   - Step never mutates more than one label.
//   - Converged is an outcome, not an error.
//   - The first error is kept and returned by every later Step.

package balance

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/triad/core"
	"github.com/katalvlaran/triad/randset"
	"github.com/katalvlaran/triad/signed"
)

// Universe is a single structural-balance simulation.
type Universe struct {
	g      *signed.Graph
	m      *signed.Maintainer
	policy Policy
	rng    *rand.Rand
	logger *slog.Logger

	rounds int
	flips  int
	err    error
}

// New labels g (edge ⇒ Friend, non-edge ⇒ Enemy) and returns a universe
// over it. Complexity: O(N³) for the initial instability counts.
func New(g *core.Graph, opts ...Option) (*Universe, error) {
	sg, err := signed.FromGraph(g)
	if err != nil {
		return nil, fmt.Errorf("balance: New: %w", err)
	}
	return NewFromSigned(sg, opts...), nil
}

// NewFromSigned returns a universe that takes ownership of sg.
func NewFromSigned(sg *signed.Graph, opts ...Option) *Universe {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.rng == nil {
		s.rng = newRandFromClock()
	}
	u := &Universe{
		g:      sg,
		m:      signed.NewMaintainer(sg),
		policy: s.policy,
		rng:    s.rng,
		logger: s.logger,
	}
	friends, enemies := sg.Counts()
	u.logger.Debug("universe created",
		"nodes", sg.N(),
		"friends", friends,
		"enemies", enemies,
		"unstable_edges", u.m.UnstableCount(),
		"policy", u.policy.Name(),
	)

	return u
}

// Step executes one round.
//
// Returns Converged when no unstable edge remains, NoFlip when the policy
// declined, and Flipped with the edge otherwise. An error is fatal; the
// universe must be discarded.
func (u *Universe) Step() (Outcome, error) {
	if u.err != nil {
		return Outcome{}, u.err
	}

	t, err := u.sampleTriangle()
	if errors.Is(err, ErrNoUnstableEdges) {
		return Outcome{Kind: Converged}, nil
	}
	if err != nil {
		return Outcome{}, u.fail(err)
	}

	u.rounds++
	e, flip := u.policy.Choose(u.g, t, u.rng)
	if !flip {
		return Outcome{Kind: NoFlip}, nil
	}
	if err = u.m.Flip(e.U, e.V); err != nil {
		return Outcome{}, u.fail(fmt.Errorf("balance: round %d: policy %s chose %v on %v: %w",
			u.rounds, u.policy.Name(), e, t, err))
	}
	u.flips++
	u.logger.Debug("flip", "round", u.rounds, "edge", e.String(), "triangle", t.String())

	return Outcome{Kind: Flipped, Edge: e}, nil
}

// sampleTriangle draws an unstable edge, orients it at random and returns the
// first node of a random permutation that closes an unstable triangle. The
// third node is "first hit in a random permutation", not uniform over all
// valid completions.
func (u *Universe) sampleTriangle() (signed.Triangle, error) {
	e, err := u.m.ChooseUnstable(u.rng)
	if errors.Is(err, randset.ErrEmpty) {
		return signed.Triangle{}, ErrNoUnstableEdges
	}
	if err != nil {
		return signed.Triangle{}, err
	}
	a, b := e.U, e.V
	if u.rng.Intn(2) == 1 {
		a, b = b, a
	}
	for _, c := range u.rng.Perm(u.g.N()) {
		w := signed.Node(c)
		if w == a || w == b {
			continue
		}
		stable, err := u.g.IsStable(a, b, w)
		if err != nil {
			return signed.Triangle{}, err
		}
		if !stable {
			return signed.Triangle{U: a, V: b, W: w}, nil
		}
	}

	return signed.Triangle{}, fmt.Errorf("balance: no unstable triangle along %v: %w", e, signed.ErrInvariantViolation)
}

func (u *Universe) fail(err error) error {
	u.err = err
	u.logger.Debug("universe failed", "round", u.rounds, "error", err)
	return err
}

// Err returns the sticky fatal error, if any.
func (u *Universe) Err() error { return u.err }

// Converged reports whether no unstable edge remains.
func (u *Universe) Converged() bool { return u.m.UnstableCount() == 0 }

// Rounds returns the number of non-terminal rounds executed so far.
func (u *Universe) Rounds() int { return u.rounds }

// Flips returns the number of label flips so far.
func (u *Universe) Flips() int { return u.flips }

// UnstableEdges returns the current number of unstable edges.
func (u *Universe) UnstableEdges() int { return u.m.UnstableCount() }

// Graph exposes the signed graph for read-only queries.
func (u *Universe) Graph() *signed.Graph { return u.g }

// Policy returns the configured policy.
func (u *Universe) Policy() Policy { return u.policy }

// Verify checks every cached counter against a brute-force recount. O(N³).
func (u *Universe) Verify() error { return u.m.Verify() }
