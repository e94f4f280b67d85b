package balance

import (
	"fmt"

	"github.com/katalvlaran/triad/signed"
)

// Kind classifies the result of one round.
type Kind uint8

const (
	// NoFlip means a round ran but left every label unchanged.
	NoFlip Kind = iota
	// Flipped means exactly one edge changed label.
	Flipped
	// Converged means no unstable edge exists; nothing ran.
	Converged
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case NoFlip:
		return "no-flip"
	case Flipped:
		return "flipped"
	case Converged:
		return "converged"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Outcome is the observable result of Step. Edge is set only for Flipped.
type Outcome struct {
	Kind Kind
	Edge signed.Edge
}

// String renders "flipped (u,v)" or the bare kind.
func (o Outcome) String() string {
	if o.Kind == Flipped {
		return fmt.Sprintf("%s %v", o.Kind, o.Edge)
	}
	return o.Kind.String()
}
