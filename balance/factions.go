package balance

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/triad/bfs"
	"github.com/katalvlaran/triad/signed"
)

// Split is the faction-size pair of a converged universe, smaller first.
// A single faction of N nodes is {0, N}.
type Split struct {
	Small, Large int
}

// String renders "small/large".
func (s Split) String() string {
	return fmt.Sprintf("%d/%d", s.Small, s.Large)
}

// Factions is the partition of a balanced universe into internally friendly,
// mutually hostile groups of input vertex IDs.
type Factions struct {
	Groups [][]string
}

// Sizes returns the group sizes in ascending order.
func (f Factions) Sizes() []int {
	out := make([]int, len(f.Groups))
	for i, g := range f.Groups {
		out[i] = len(g)
	}
	sort.Ints(out)

	return out
}

// Split returns the two faction sizes, padding a single faction with 0.
func (f Factions) Split() Split {
	s := f.Sizes()
	switch len(s) {
	case 0:
		return Split{}
	case 1:
		return Split{Small: 0, Large: s[0]}
	default:
		return Split{Small: s[0], Large: s[1]}
	}
}

// Factions returns the connected components of the Friend subgraph.
//
// Errors: the sticky fatal error, ErrNotConverged while unstable edges
// remain, or signed.ErrInvariantViolation if a balanced graph yields more
// than two components.
func (u *Universe) Factions() (Factions, error) {
	if u.err != nil {
		return Factions{}, u.err
	}
	if !u.Converged() {
		return Factions{}, fmt.Errorf("balance: Factions: %d unstable edges: %w", u.m.UnstableCount(), ErrNotConverged)
	}
	groups, err := bfs.Components(u.g.FriendGraph())
	if err != nil {
		return Factions{}, fmt.Errorf("balance: Factions: %w", err)
	}
	if len(groups) > 2 {
		return Factions{}, fmt.Errorf("balance: Factions: %d friend components: %w", len(groups), signed.ErrInvariantViolation)
	}

	return Factions{Groups: groups}, nil
}
