package signed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triad/signed"
)

// fromEnemies builds a graph over n nodes where exactly the listed pairs are Enemy.
func fromEnemies(t *testing.T, n int, enemies ...signed.Edge) *signed.Graph {
	t.Helper()
	set := make(map[signed.Edge]bool, len(enemies))
	for _, e := range enemies {
		set[signed.NewEdge(e.U, e.V)] = true
	}
	g, err := signed.FromFunc(n, func(u, v signed.Node) signed.Label {
		if set[signed.NewEdge(u, v)] {
			return signed.Enemy
		}
		return signed.Friend
	})
	require.NoError(t, err)
	return g
}

// TestIsStable_AllEnemyCounts covers the four possible triads.
func TestIsStable_AllEnemyCounts(t *testing.T) {
	tests := []struct {
		name    string
		enemies []signed.Edge
		count   int
		stable  bool
	}{
		{"all friends", nil, 0, true},
		{"one enemy", []signed.Edge{{U: 0, V: 1}}, 1, false},
		{"two enemies", []signed.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, 2, true},
		{"three enemies", []signed.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}}, 3, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := fromEnemies(t, 3, tc.enemies...)
			for _, perm := range [][3]signed.Node{{0, 1, 2}, {2, 0, 1}, {1, 2, 0}, {2, 1, 0}} {
				c, err := g.EnemyCount(perm[0], perm[1], perm[2])
				require.NoError(t, err)
				assert.Equal(t, tc.count, c, "perm %v", perm)
				s, err := g.IsStable(perm[0], perm[1], perm[2])
				require.NoError(t, err)
				assert.Equal(t, tc.stable, s, "perm %v", perm)
			}
			want := 0
			if !tc.stable {
				want = 1
			}
			assert.Equal(t, want, g.UnstableTriangles())
		})
	}
}

// TestOracle_Errors checks rejection of degenerate and out-of-range triples.
func TestOracle_Errors(t *testing.T) {
	g := fromEnemies(t, 4)

	_, err := g.EnemyCount(0, 0, 1)
	assert.ErrorIs(t, err, signed.ErrInvalidTriangle)
	_, err = g.IsStable(1, 2, 1)
	assert.ErrorIs(t, err, signed.ErrInvalidTriangle)
	_, err = g.EnemyCount(0, 1, 4)
	assert.ErrorIs(t, err, signed.ErrNodeOutOfRange)
	_, err = g.IsStable(-1, 1, 2)
	assert.ErrorIs(t, err, signed.ErrNodeOutOfRange)

	_, err = g.Recount(2, 2)
	assert.ErrorIs(t, err, signed.ErrInvalidEdge)
	_, err = g.Recount(0, 9)
	assert.ErrorIs(t, err, signed.ErrNodeOutOfRange)
}
