// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: Sparse adjacency list with the same selection rule as Matrix.
// Determinism:
//   - Each neighbor slice is sorted by id ascending.

package adjacency

import (
	"sort"

	"github.com/katalvlaran/roadwidth/core"
)

// Arc is one traversable neighbor of a node.
type Arc struct {
	To    int
	Width int64
}

// List stores, per node, the sorted set of traversable neighbors.
// List is immutable after BuildList.
type List struct {
	arcs [][]Arc
	// loops keeps selected self-loop widths so Width(u,u) agrees with Matrix.
	loops map[int]int64
}

// BuildList derives the sparse adjacency of g.
// Complexity: O(N + E log E) time, O(N + E) space.
func BuildList(g *core.Graph) *List {
	floor := g.MinWidth()
	best := make(map[[2]int]int64, len(g.Roads))
	for _, r := range g.Roads {
		if r.Width <= floor {
			continue
		}
		u, v := r.From, r.To
		if u > v {
			u, v = v, u
		}
		if r.Width > best[[2]int{u, v}] {
			best[[2]int{u, v}] = r.Width
		}
	}

	l := &List{arcs: make([][]Arc, g.NumNodes), loops: make(map[int]int64)}
	for k, w := range best {
		u, v := k[0], k[1]
		if u == v {
			l.loops[u] = w
			continue
		}
		l.arcs[u] = append(l.arcs[u], Arc{To: v, Width: w})
		l.arcs[v] = append(l.arcs[v], Arc{To: u, Width: w})
	}
	for _, a := range l.arcs {
		sort.Slice(a, func(i, j int) bool { return a[i].To < a[j].To })
	}

	return l
}

// Order returns the number of nodes.
func (l *List) Order() int { return len(l.arcs) }

// Width returns the selected width between u and v, or 0 if none.
// Complexity: O(log deg(u)).
func (l *List) Width(u, v int) int64 {
	if u < 0 || v < 0 || u >= len(l.arcs) || v >= len(l.arcs) {
		return 0
	}
	if u == v {
		return l.loops[u]
	}
	a := l.arcs[u]
	i := sort.Search(len(a), func(i int) bool { return a[i].To >= v })
	if i < len(a) && a[i].To == v {
		return a[i].Width
	}

	return 0
}

// Neighbors calls fn for every neighbor of u in ascending id order.
func (l *List) Neighbors(u int, fn func(v int, w int64)) {
	if u < 0 || u >= len(l.arcs) {
		return
	}
	for _, a := range l.arcs[u] {
		fn(a.To, a.Width)
	}
}

// Arcs returns a copy of u's neighbor slice.
func (l *List) Arcs(u int) []Arc {
	return append([]Arc(nil), l.arcs[u]...)
}

// Degree returns the number of distinct traversable neighbors of u.
func (l *List) Degree(u int) int { return len(l.arcs[u]) }

// Matrix expands l into the equivalent dense Matrix, or returns nil when the
// order exceeds MaxDenseOrder.
// Complexity: O(N² + E).
func (l *List) Matrix() *Matrix {
	n := len(l.arcs)
	if n > MaxDenseOrder {
		return nil
	}
	m := &Matrix{n: n, data: make([]int64, n*n)}
	for u, arcs := range l.arcs {
		for _, a := range arcs {
			m.data[u*n+a.To] = a.Width
		}
	}
	for u, w := range l.loops {
		m.data[u*n+u] = w
	}

	return m
}
