package signed_test

import (
	"fmt"

	"github.com/katalvlaran/triad/signed"
)

// ExampleMaintainer_Flip resolves a one-enemy triangle by befriending.
func ExampleMaintainer_Flip() {
	g, _ := signed.FromFunc(3, func(u, v signed.Node) signed.Label {
		if u == 0 && v == 2 {
			return signed.Enemy
		}
		return signed.Friend
	})
	m := signed.NewMaintainer(g)
	fmt.Println("unstable edges:", m.UnstableCount())

	if err := m.Flip(0, 2); err != nil {
		fmt.Println("error:", err)
		return
	}
	l, _ := g.Label(0, 2)
	fmt.Println("(0,2) is now", l)
	fmt.Println("unstable edges:", m.UnstableCount())
	// Output:
	// unstable edges: 3
	// (0,2) is now friend
	// unstable edges: 0
}
