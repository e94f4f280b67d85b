// SPDX-License-Identifier: MIT
// Package: triad/balance
//
// policy.go - the voting heuristic and the Passive / Forced transition
// policies built on it.

package balance

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/triad/signed"
)

// pushAwayExponent sharpens the smoothed vote share toward 0 or 1.
const pushAwayExponent = 2

// Policy names accepted by ParsePolicy.
const (
	PolicyPassive = "passive"
	PolicyForced  = "forced"
)

// Policy decides which edge of a sampled unstable triangle to flip.
// Choose must only read g; flip reports whether an edge was chosen.
type Policy interface {
	Name() string
	Choose(g *signed.Graph, t signed.Triangle, rng *rand.Rand) (e signed.Edge, flip bool)
}

// PushAway maps x ∈ [0,1] to x^k / (x^k + (1-x)^k), moving it away from 1/2.
func PushAway(x float64, k int) float64 {
	a := math.Pow(x, float64(k))
	b := math.Pow(1-x, float64(k))
	return a / (a + b)
}

// FlipProbability is the voting heuristic seen from pivot t.U. Every friend a
// of U other than V votes; a agrees when label(a,V) equals label(U,V). With
// same agreeing out of total voters, p = (same + 0.5) / (total + 1) and the
// result PushAway(p, 2) is the probability of flipping (U,W).
//
// No friends gives p = 1/2. Complexity: O(N).
func FlipProbability(g *signed.Graph, t signed.Triangle) float64 {
	examined, _ := g.Label(t.U, t.V)
	same, total := 0, 0
	for a := range g.NeighborsWithLabel(t.U, signed.Friend) {
		if a == t.V {
			continue
		}
		total++
		if l, _ := g.Label(a, t.V); l == examined {
			same++
		}
	}
	p := (float64(same) + 0.5) / (float64(total) + 1)

	return PushAway(p, pushAwayExponent)
}

// Passive flips (U,W) with probability FlipProbability and otherwise leaves
// the round as a no-op.
type Passive struct{}

// Name implements Policy.
func (Passive) Name() string { return PolicyPassive }

// Choose implements Policy.
func (Passive) Choose(g *signed.Graph, t signed.Triangle, rng *rand.Rand) (signed.Edge, bool) {
	if rng.Float64() < FlipProbability(g, t) {
		return signed.NewEdge(t.U, t.W), true
	}
	return signed.Edge{}, false
}

// Forced always flips. On a triangle with exactly one Enemy edge it first,
// with probability EnemyPriority, rotates the triple so that both examined
// edges (U,V) and (U,W) are Friend. It then flips (U,W) with probability
// FlipProbability and (U,V) otherwise.
type Forced struct {
	priority float64
}

// NewForced returns a Forced policy; priority must lie in [0,1].
func NewForced(priority float64) (Forced, error) {
	if math.IsNaN(priority) || priority < 0 || priority > 1 {
		return Forced{}, fmt.Errorf("balance: NewForced(%g): %w", priority, ErrInvalidPriority)
	}
	return Forced{priority: priority}, nil
}

// EnemyPriority returns the rotation probability.
func (f Forced) EnemyPriority() float64 { return f.priority }

// Name implements Policy.
func (Forced) Name() string { return PolicyForced }

// Choose implements Policy.
func (f Forced) Choose(g *signed.Graph, t signed.Triangle, rng *rand.Rand) (signed.Edge, bool) {
	if c, err := g.EnemyCount(t.U, t.V, t.W); err == nil && c == 1 && rng.Float64() < f.priority {
		t = friendlyPivot(g, t)
	}
	if rng.Float64() < FlipProbability(g, t) {
		return signed.NewEdge(t.U, t.W), true
	}
	return signed.NewEdge(t.U, t.V), true
}

// friendlyPivot rotates a one-enemy triangle so the enemy edge is (V,W).
func friendlyPivot(g *signed.Graph, t signed.Triangle) signed.Triangle {
	if l, _ := g.Label(t.U, t.V); l == signed.Enemy {
		return signed.Triangle{U: t.W, V: t.U, W: t.V}
	}
	if l, _ := g.Label(t.U, t.W); l == signed.Enemy {
		return signed.Triangle{U: t.V, V: t.U, W: t.W}
	}
	return t
}

// ParsePolicy resolves a policy by name ("passive" or "forced", case
// insensitive). priority is used by "forced" only.
func ParsePolicy(name string, priority float64) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyPassive:
		return Passive{}, nil
	case PolicyForced:
		f, err := NewForced(priority)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("balance: ParsePolicy(%q): %w", name, ErrUnknownPolicy)
	}
}
