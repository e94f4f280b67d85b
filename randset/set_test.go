package randset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triad/randset"
)

func TestSet_AddIsIdempotent(t *testing.T) {
	s := randset.New[int]()
	s.Add(7)
	s.Add(7)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(7))
}

func TestSet_RemoveMissing(t *testing.T) {
	s := randset.New[string]()
	err := s.Remove("ghost")
	assert.ErrorIs(t, err, randset.ErrNotFound)

	s.Add("a")
	require.NoError(t, s.Remove("a"))
	assert.ErrorIs(t, s.Remove("a"), randset.ErrNotFound, "second removal must fail")
}

func TestSet_ChooseEmpty(t *testing.T) {
	s := randset.New[int]()
	_, err := s.Choose(rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, randset.ErrEmpty)
}

func TestSet_RemoveJustAddedRestoresSize(t *testing.T) {
	s := randset.NewWithCapacity[int](4)
	for i := 0; i < 4; i++ {
		s.Add(i)
	}
	before := s.Len()
	s.Add(99)
	require.NoError(t, s.Remove(99))
	assert.Equal(t, before, s.Len())
	assert.False(t, s.Contains(99))
}

// TestSet_ScriptedAgainstReference drives random add/remove operations and
// compares the set against a plain map after every step.
func TestSet_ScriptedAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := randset.New[int]()
	ref := map[int]bool{}

	for step := 0; step < 5000; step++ {
		x := rng.Intn(50)
		if rng.Intn(3) == 0 {
			err := s.Remove(x)
			if ref[x] {
				require.NoError(t, err, "step %d: remove %d", step, x)
				delete(ref, x)
			} else {
				require.ErrorIs(t, err, randset.ErrNotFound, "step %d: remove %d", step, x)
			}
		} else {
			s.Add(x)
			ref[x] = true
		}

		require.Equal(t, len(ref), s.Len(), "step %d", step)
		for k := 0; k < 50; k++ {
			require.Equal(t, ref[k], s.Contains(k), "step %d: contains %d", step, k)
		}
		if s.Len() > 0 {
			got, err := s.Choose(rng)
			require.NoError(t, err)
			require.True(t, ref[got], "step %d: chose removed element %d", step, got)
		}
	}
}

func TestSet_ChooseIsRoughlyUniformAfterRemovals(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := randset.New[int]()
	for i := 0; i < 10; i++ {
		s.Add(i)
	}
	// remove from the front so every survivor has been moved at least once
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Remove(i))
	}

	const draws = 50000
	hits := map[int]int{}
	for i := 0; i < draws; i++ {
		x, err := s.Choose(rng)
		require.NoError(t, err)
		hits[x]++
	}
	require.Len(t, hits, 5)
	for x, n := range hits {
		assert.InDelta(t, draws/5, n, draws/50, "element %d drawn %d times", x, n)
	}
}

func TestSet_AllAndClear(t *testing.T) {
	s := randset.New[int]()
	for i := 0; i < 6; i++ {
		s.Add(i)
	}
	seen := map[int]bool{}
	for x := range s.All() {
		seen[x] = true
	}
	assert.Len(t, seen, 6)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(3))
	s.Add(3)
	assert.True(t, s.Contains(3))
}
