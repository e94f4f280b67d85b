// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: Set[T] with O(1) add/remove/contains/choose.
// Policy:
//   - Every member maps to exactly one valid slot of items.
//   - Remove compacts by swapping the last item into the freed slot.

package randset

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"
)

// Sentinel errors for Set operations.
var (
	// ErrNotFound is returned by Remove when the element is not a member.
	ErrNotFound = errors.New("randset: element not found")

	// ErrEmpty is returned by Choose when the set has no members.
	ErrEmpty = errors.New("randset: set is empty")
)

// Set is an unordered collection of distinct comparable values.
// The zero value is not usable; create sets with New.
type Set[T comparable] struct {
	items []T       // dense storage, order is irrelevant
	index map[T]int // value → position in items
}

// New returns an empty Set.
func New[T comparable]() *Set[T] {
	return &Set[T]{index: make(map[T]int)}
}

// NewWithCapacity returns an empty Set with room for n members.
func NewWithCapacity[T comparable](n int) *Set[T] {
	if n < 0 {
		n = 0
	}
	return &Set[T]{
		items: make([]T, 0, n),
		index: make(map[T]int, n),
	}
}

// Add inserts x. Adding an existing member is a no-op.
// Complexity: O(1) amortized.
func (s *Set[T]) Add(x T) {
	if _, ok := s.index[x]; ok {
		return
	}
	s.index[x] = len(s.items)
	s.items = append(s.items, x)
}

// Remove deletes x, returning ErrNotFound if x is not a member.
//
// The last element is moved into x's slot so the backing slice stays dense.
// Complexity: O(1).
func (s *Set[T]) Remove(x T) error {
	pos, ok := s.index[x]
	if !ok {
		return fmt.Errorf("randset: Remove(%v): %w", x, ErrNotFound)
	}
	delete(s.index, x)

	last := len(s.items) - 1
	if pos != last {
		moved := s.items[last]
		s.items[pos] = moved
		s.index[moved] = pos
	}
	var zero T
	s.items[last] = zero // drop the reference for pointer-like T
	s.items = s.items[:last]

	return nil
}

// Contains reports whether x is a member.
func (s *Set[T]) Contains(x T) bool {
	_, ok := s.index[x]
	return ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int { return len(s.items) }

// Choose returns a member drawn uniformly at random using rng.
// It returns ErrEmpty when the set has no members.
// Complexity: O(1).
func (s *Set[T]) Choose(rng *rand.Rand) (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[rng.Intn(len(s.items))], nil
}

// All yields every member once. The order is unspecified and may change
// after any mutation; the set must not be mutated during iteration.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s.items {
			if !yield(x) {
				return
			}
		}
	}
}

// Clear removes every member while keeping the allocated capacity.
func (s *Set[T]) Clear() {
	clear(s.index)
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}
