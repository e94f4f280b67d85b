// Package randset provides Set, a small generic container that supports
// constant-time insertion, removal, membership tests and uniform random
// selection.
//
// Layout
//
//	items: [ a  b  c  d ]          dense backing slice
//	index: {a:0 b:1 c:2 d:3}       element → slot
//
// Remove(b) moves the last element into b's slot and shrinks the slice:
//
//	items: [ a  d  c ]
//	index: {a:0 d:1 c:2}
//
// Draws are uniform over the current members; the order of items carries no
// meaning, so swap-based compaction never biases later draws.
//
// Complexity
//
//   - Add, Remove, Contains, Choose: O(1) (amortized for Add).
//   - Memory: O(n).
//
// Concurrency
//
//	A Set is not safe for concurrent mutation; guard it externally or keep it
//	owned by a single goroutine.
package randset
