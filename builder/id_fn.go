package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based agent index to a vertex ID. It must be pure: the
// same index always yields the same ID, and distinct indices distinct IDs.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// signed.FromGraph orders such IDs numerically, so node n of the signed graph
// is the agent built from index n.
func DefaultIDFn(idx int) string {
	return decimalID(idx)
}

// LetterIDFn returns the spreadsheet-column name for idx: 0→"A", 25→"Z",
// 26→"AA". Useful for small hand-read fixtures.
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixedIDFn returns prefix + decimal index, e.g. "agent-0", "agent-1".
// Panics if idx < 0.
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithLetterIDs sets the ID scheme to LetterIDFn.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}

// WithPrefixedIDs sets the ID scheme to PrefixedIDFn(prefix).
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixedIDFn(prefix))
}
