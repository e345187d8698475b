package widest_test

import (
	"fmt"

	"github.com/katalvlaran/roadwidth/adjacency"
	"github.com/katalvlaran/roadwidth/core"
	"github.com/katalvlaran/roadwidth/widest"
)

// ExampleSolve finds the widest route around a ring whose direct road is
// at the global minimum width.
//
//	0 ──50── 1
//	│        │
//	10       30
//	│        │
//	3 ──80── 2
func ExampleSolve() {
	g := core.NewGraph(4,
		core.Road{From: 0, To: 1, Width: 50},
		core.Road{From: 1, To: 2, Width: 30},
		core.Road{From: 2, To: 3, Width: 80},
		core.Road{From: 0, To: 3, Width: 10},
	)
	adj := adjacency.MustBuild(g)

	res, err := widest.Solve(adj, 0, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	rg, _ := res.FeasibleRange(g.MinWidth())
	fmt.Println("bottleneck:", res.Width())
	fmt.Println("range:", rg)
	fmt.Println("route:", res.Route(adj))

	// Output:
	// bottleneck: 30
	// range: [1, 20]
	// route: 0 -(50)-> 1 -(30)-> 2 -(80)-> 3
}
