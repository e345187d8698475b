// Package widest_test validates the widest-path solver and reconstructor on
// hand-built scenarios and on reproducible random graphs.
package widest_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/roadwidth/adjacency"
	"github.com/katalvlaran/roadwidth/builder"
	"github.com/katalvlaran/roadwidth/core"
	"github.com/katalvlaran/roadwidth/widest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioA() *core.Graph {
	return core.NewGraph(4,
		core.Road{From: 0, To: 1, Width: 50},
		core.Road{From: 1, To: 2, Width: 30},
		core.Road{From: 2, To: 3, Width: 80},
		core.Road{From: 0, To: 3, Width: 10},
	)
}

// randomGraph returns a connected generated graph with a few extra random
// roads so that duplicates, loops and ties all appear.
func randomGraph(t *testing.T, seed int64, n, m int) *core.Graph {
	t.Helper()
	g, err := builder.Generate(n, m, builder.WithSeed(seed), builder.WithWidthRange(1, 12))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n/2; i++ {
		g.Roads = append(g.Roads, core.Road{From: rng.Intn(n), To: rng.Intn(n), Width: 1 + rng.Int63n(12)})
	}
	return g
}

// bruteBottleneck returns, for every node, the largest w such that the node
// is reachable from source over roads of width >= w (NegInf if unreachable).
func bruteBottleneck(adj widest.Adjacency, source int) []int64 {
	n := adj.Order()
	widthSet := map[int64]struct{}{}
	for u := 0; u < n; u++ {
		adj.Neighbors(u, func(_ int, w int64) { widthSet[w] = struct{}{} })
	}
	widths := make([]int64, 0, len(widthSet))
	for w := range widthSet {
		widths = append(widths, w)
	}
	sort.Slice(widths, func(i, j int) bool { return widths[i] > widths[j] })

	out := make([]int64, n)
	for i := range out {
		out[i] = widest.NegInf
	}
	out[source] = widest.PosInf
	for _, floor := range widths {
		seen := make([]bool, n)
		seen[source] = true
		stack := []int{source}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			adj.Neighbors(u, func(v int, w int64) {
				if w >= floor && !seen[v] {
					seen[v] = true
					stack = append(stack, v)
				}
			})
		}
		for v := range seen {
			if seen[v] && out[v] == widest.NegInf {
				out[v] = floor
			}
		}
	}
	return out
}

// assertParentInvariant checks Bottleneck[v] == min(Bottleneck[Parent[v]], Width(Parent[v], v)).
func assertParentInvariant(t *testing.T, adj widest.Adjacency, res *widest.Result) {
	t.Helper()
	require.Equal(t, widest.PosInf, res.Bottleneck[res.Source])
	require.Equal(t, -1, res.Parent[res.Source])
	for v, p := range res.Parent {
		if v == res.Source {
			continue
		}
		if !res.Reached(v) {
			require.Equal(t, -1, p, "unreached node %d has a parent", v)
			continue
		}
		require.NotEqual(t, -1, p, "reached node %d has no parent", v)
		want := adj.Width(p, v)
		if res.Bottleneck[p] < want {
			want = res.Bottleneck[p]
		}
		require.Equal(t, want, res.Bottleneck[v], "node %d via %d", v, p)
		require.LessOrEqual(t, res.Bottleneck[v], res.Bottleneck[p])
	}
}

func TestSolve_ScenarioA(t *testing.T) {
	t.Parallel()

	g := scenarioA()
	for _, strategy := range []widest.Strategy{widest.StrategyQueue, widest.StrategyHeap} {
		adj := adjacency.MustBuild(g)
		res, err := widest.Solve(adj, 0, 3, widest.WithStrategy(strategy))
		require.NoError(t, err, strategy.String())

		assert.True(t, res.HasPath())
		assert.Equal(t, int64(30), res.Width())
		assert.Equal(t, []int{-1, 0, 1, 2}, res.Parent)

		route := res.Route(adj)
		assert.Equal(t, []int{0, 1, 2, 3}, route.Nodes)
		assert.Equal(t, []int64{50, 30, 80}, route.Widths)
		assert.Equal(t, int64(30), route.Bottleneck())
		assert.Equal(t, "0 -(50)-> 1 -(30)-> 2 -(80)-> 3", route.String())

		rg, err := res.FeasibleRange(g.MinWidth())
		require.NoError(t, err)
		assert.Equal(t, widest.Range{Low: 1, High: 20}, rg)
		assert.Equal(t, "[1, 20]", rg.String())
	}
}

func TestSolve_ScenarioB_Disconnected(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(4,
		core.Road{From: 0, To: 1, Width: 5},
		core.Road{From: 0, To: 1, Width: 40},
		core.Road{From: 2, To: 3, Width: 70},
	)
	adj := adjacency.MustBuild(g)
	res, err := widest.Solve(adj, 0, 3)
	require.NoError(t, err)

	assert.False(t, res.HasPath())
	assert.Equal(t, widest.NegInf, res.Width())
	assert.Equal(t, -1, res.Parent[3])
	assert.True(t, res.Route(adj).Empty())
	assert.True(t, widest.Reconstruct(adj, res.Parent, 3).Empty())

	_, err = res.FeasibleRange(g.MinWidth())
	require.ErrorIs(t, err, widest.ErrNoPath)
	require.NotErrorIs(t, err, widest.ErrInfeasibleRange)
}

func TestSolve_ScenarioC_SingleRoadAtMinWidth(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(2, core.Road{From: 0, To: 1, Width: 10})
	adj := adjacency.MustBuild(g)
	res, err := widest.Solve(adj, 0, 1)
	require.NoError(t, err)

	assert.False(t, res.HasPath(), "a road at minWidth is not traversable")
	assert.Equal(t, []int{-1, -1}, res.Parent)
	assert.Equal(t, 1, res.Dequeues)
}

func TestSolve_SourceEqualsTarget(t *testing.T) {
	t.Parallel()

	adj := adjacency.MustBuild(scenarioA())
	res, err := widest.Solve(adj, 2, 2)
	require.NoError(t, err)

	assert.True(t, res.HasPath())
	assert.Equal(t, widest.PosInf, res.Width())
	assert.Equal(t, []int{2}, res.Route(adj).Nodes)
	assert.True(t, widest.Reconstruct(adj, res.Parent, 2).Empty())

	rg, err := res.FeasibleRange(10)
	require.NoError(t, err)
	assert.True(t, rg.Unbounded)
	assert.Equal(t, "[1, +inf)", rg.String())
}

func TestSolve_Validation(t *testing.T) {
	t.Parallel()

	_, err := widest.Solve(nil, 0, 0)
	require.ErrorIs(t, err, widest.ErrNilAdjacency)

	adj := adjacency.MustBuild(scenarioA())
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		_, err = widest.Solve(adj, p[0], p[1])
		require.ErrorIs(t, err, widest.ErrVertexNotFound, "source=%d target=%d", p[0], p[1])
	}
	assert.Panics(t, func() { widest.WithStrategy(widest.Strategy(9)) })
}

func TestSolve_RelaxedMoreThanOnce(t *testing.T) {
	t.Parallel()

	// Node 3 is first reached cheaply through 1, then improved through 2,
	// so it is enqueued twice. The width-1 road sits at minWidth and is dropped.
	g := core.NewGraph(5,
		core.Road{From: 0, To: 1, Width: 90},
		core.Road{From: 0, To: 2, Width: 60},
		core.Road{From: 1, To: 3, Width: 20},
		core.Road{From: 2, To: 3, Width: 55},
		core.Road{From: 3, To: 4, Width: 70},
		core.Road{From: 0, To: 4, Width: 1},
	)
	adj := adjacency.MustBuild(g)

	var relaxed []int
	res, err := widest.Solve(adj, 0, 4, widest.WithOnRelax(func(v, _ int, _ int64) {
		relaxed = append(relaxed, v)
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(55), res.Width())
	assert.Equal(t, []int{0, 2, 3, 4}, res.Route(adj).Nodes)
	assert.Equal(t, []int{1, 2, 3, 3, 4}, relaxed)
	assert.Equal(t, 6, res.Dequeues)
	assertParentInvariant(t, adj, res)
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		g := randomGraph(t, seed, 12, 20)
		adj := adjacency.MustBuild(g)
		want := bruteBottleneck(adj, 0)

		for _, strategy := range []widest.Strategy{widest.StrategyQueue, widest.StrategyHeap} {
			res, err := widest.Solve(adj, 0, 11, widest.WithStrategy(strategy))
			require.NoError(t, err)
			require.Equal(t, want, res.Bottleneck, "seed %d strategy %s", seed, strategy)
			assertParentInvariant(t, adj, res)

			if res.HasPath() {
				route := res.Route(adj)
				require.Equal(t, 0, route.Nodes[0])
				require.Equal(t, 11, route.Nodes[len(route.Nodes)-1])
				require.Equal(t, res.Width(), route.Bottleneck())
			}
		}
	}
}

func TestSolve_DenseAndSparseAgree(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 10; seed++ {
		g := randomGraph(t, seed, 30, 60)
		dense, err := widest.Solve(adjacency.MustBuild(g), 3, 17)
		require.NoError(t, err)
		sparse, err := widest.Solve(adjacency.BuildList(g), 3, 17)
		require.NoError(t, err)

		require.Equal(t, dense.Bottleneck, sparse.Bottleneck, "seed %d", seed)
		require.Equal(t, dense.Parent, sparse.Parent, "seed %d", seed)
		require.Equal(t, dense.Dequeues, sparse.Dequeues, "seed %d", seed)
	}
}

func TestSolve_Hooks(t *testing.T) {
	t.Parallel()

	adj := adjacency.MustBuild(scenarioA())
	var dequeued []int
	res, err := widest.Solve(adj, 0, 3,
		widest.WithOnDequeue(func(u int) { dequeued = append(dequeued, u) }),
		widest.WithOnDequeue(nil), // nil hooks are ignored
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, dequeued)
	assert.Equal(t, len(dequeued), res.Dequeues)
}
