package balance_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/triad/balance"
	"github.com/katalvlaran/triad/builder"
)

// ExampleUniverse_Run drives a forced universe to balance and reports the
// split of the population.
func ExampleUniverse_Run() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomSparse(12, 0.5),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	forced, _ := balance.NewForced(0.2)
	u, err := balance.New(g, balance.WithPolicy(forced), balance.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, err := u.Run(context.Background(), balance.WithMaxRounds(1_000_000))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	f, _ := u.Factions()
	sp := f.Split()
	fmt.Println("converged:", s.Converged)
	fmt.Println("everyone placed:", sp.Small+sp.Large == 12)
	// Output:
	// converged: true
	// everyone placed: true
}
