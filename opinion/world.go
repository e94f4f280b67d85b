// SPDX-License-Identifier: MIT
// Package: triad/opinion
//
// world.go - voters on a network, candidates on a line, diffusion rounds.

package opinion

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/katalvlaran/triad/builder"
	"github.com/katalvlaran/triad/core"
)

var (
	// ErrNoCandidates is returned when a world is built without candidates.
	ErrNoCandidates = errors.New("opinion: at least one candidate is required")

	// ErrNoEdges is returned by Diffuse on a graph without edges.
	ErrNoEdges = errors.New("opinion: network has no edges")

	// ErrNilArgument is returned for a nil graph, factory, rule or RNG.
	ErrNilArgument = errors.New("opinion: nil argument")
)

// World is one electorate on a fixed acquaintance network.
type World struct {
	ids        []string
	edges      [][2]int
	voters     []Voter
	candidates []Candidate
	rule       Rule
	rng        *rand.Rand
	logger     *slog.Logger
	rounds     int
}

// Population describes a world for NewBarabasiAlbertWorld.
type Population struct {
	Voters      int
	Candidates  int
	AttachEdges int // Barabási–Albert m
}

// NewWorld places one voter per vertex of g (vertices in g.Vertices() order,
// voter i on the i-th vertex) and creates total candidates, sorted by policy.
func NewWorld(g *core.Graph, vf VoterFactory, cf CandidateFactory, total int, rule Rule, rng *rand.Rand) (*World, error) {
	if g == nil || vf == nil || cf == nil || rule == nil || rng == nil {
		return nil, fmt.Errorf("opinion: NewWorld: %w", ErrNilArgument)
	}
	if total < 1 {
		return nil, fmt.Errorf("opinion: NewWorld(total=%d): %w", total, ErrNoCandidates)
	}
	if v, ok := vf.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("opinion: NewWorld: %w", err)
		}
	}

	ids := g.Vertices()
	pos := make(map[string]int, len(ids))
	voters := make([]Voter, len(ids))
	for i, id := range ids {
		pos[id] = i
		voters[i] = vf.Voter(i, rng)
	}
	ge := g.Edges()
	edges := make([][2]int, len(ge))
	for i, e := range ge {
		edges[i] = [2]int{pos[e.From], pos[e.To]}
	}
	candidates := make([]Candidate, total)
	for i := range candidates {
		candidates[i] = cf.Candidate(i, total, rng)
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Policy < candidates[j].Policy })

	return &World{
		ids:        ids,
		edges:      edges,
		voters:     voters,
		candidates: candidates,
		rule:       rule,
		rng:        rng,
		logger:     slog.New(slog.DiscardHandler),
	}, nil
}

// NewBarabasiAlbertWorld builds a preferential-attachment network with
// pop.AttachEdges links per newcomer and populates it.
func NewBarabasiAlbertWorld(pop Population, vf VoterFactory, cf CandidateFactory, rule Rule, seed int64) (*World, error) {
	rng := rand.New(rand.NewSource(seed))
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithRand(rng)},
		builder.BarabasiAlbert(pop.Voters, pop.AttachEdges),
	)
	if err != nil {
		return nil, fmt.Errorf("opinion: network: %w", err)
	}
	return NewWorld(g, vf, cf, pop.Candidates, rule, rng)
}

// SetLogger routes per-round debug lines to l.
func (w *World) SetLogger(l *slog.Logger) {
	if l != nil {
		w.logger = l
	}
}

// Diffuse performs k adjustments: each picks an edge uniformly (with
// replacement) and a random endpoint that adjusts toward the other.
func (w *World) Diffuse(k int) error {
	if len(w.edges) == 0 {
		return fmt.Errorf("opinion: Diffuse: %w", ErrNoEdges)
	}
	for i := 0; i < k; i++ {
		e := w.edges[w.rng.Intn(len(w.edges))]
		a, b := e[0], e[1]
		if w.rng.Intn(2) == 1 {
			a, b = b, a
		}
		w.voters[a].Adjust(w.voters[b])
	}
	w.rounds++
	w.logger.Debug("diffusion round", "round", w.rounds, "adjustments", k)

	return nil
}

// ScaleTraits multiplies every voter's stubbornness and charisma by the given
// caps, mapping traits drawn from [0,1] onto [0,maxStubbornness] and
// [0,maxCharisma].
func (w *World) ScaleTraits(maxStubbornness, maxCharisma float64) error {
	if err := (Range{Min: 0, Max: maxStubbornness}).Validate(); err != nil {
		return fmt.Errorf("opinion: ScaleTraits: stubbornness: %w", err)
	}
	if err := (Range{Min: 0, Max: maxCharisma}).Validate(); err != nil {
		return fmt.Errorf("opinion: ScaleTraits: charisma: %w", err)
	}
	for i := range w.voters {
		w.voters[i].Stubbornness *= maxStubbornness
		w.voters[i].Charisma *= maxCharisma
	}
	return nil
}

// Result applies the world's rule to the current opinions.
func (w *World) Result() []Tally {
	return w.rule.Result(w.voters, w.candidates)
}

// Voters returns a copy of the electorate.
func (w *World) Voters() []Voter { return append([]Voter(nil), w.voters...) }

// Candidates returns the slate in ascending policy order.
func (w *World) Candidates() []Candidate { return append([]Candidate(nil), w.candidates...) }

// VertexID returns the network vertex of voter i.
func (w *World) VertexID(i int) string {
	if i < 0 || i >= len(w.ids) {
		return ""
	}
	return w.ids[i]
}

// Rounds returns the number of completed Diffuse calls.
func (w *World) Rounds() int { return w.rounds }
