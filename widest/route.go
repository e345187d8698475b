// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: Path reconstruction and the feasible-width rule.

package widest

import (
	"fmt"
	"strconv"
	"strings"
)

// Route is an ordered source-to-target walk with the width of each road.
// len(Widths) == len(Nodes)-1 for a non-empty route.
type Route struct {
	Nodes  []int
	Widths []int64
}

// Empty reports whether the route has no nodes.
func (rt Route) Empty() bool { return len(rt.Nodes) == 0 }

// Bottleneck returns the narrowest width on the route, PosInf for a
// single-node route and NegInf for an empty one.
func (rt Route) Bottleneck() int64 {
	if rt.Empty() {
		return NegInf
	}
	b := PosInf
	for _, w := range rt.Widths {
		if w < b {
			b = w
		}
	}

	return b
}

// String renders the route as "0 -(50)-> 1 -(30)-> 2".
func (rt Route) String() string {
	if rt.Empty() {
		return "<empty>"
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(rt.Nodes[0]))
	for i, w := range rt.Widths {
		fmt.Fprintf(&sb, " -(%d)-> %d", w, rt.Nodes[i+1])
	}

	return sb.String()
}

// Reconstruct walks parent pointers back from target until a node whose
// parent is -1, reverses the walk, and reads each road's width from adj.
//
// It returns an empty Route when target is out of range, when target itself
// has no parent (unreached, or the source with nothing to show), or when
// the parent chain is longer than the node count.
// Complexity: O(path length).
func Reconstruct(adj Adjacency, parent []int, target int) Route {
	if adj == nil || target < 0 || target >= len(parent) || parent[target] == -1 {
		return Route{}
	}

	nodes := make([]int, 0, 8)
	for cur := target; ; cur = parent[cur] {
		nodes = append(nodes, cur)
		if len(nodes) > len(parent) {
			return Route{}
		}
		if parent[cur] == -1 {
			break
		}
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	widths := make([]int64, len(nodes)-1)
	for i := range widths {
		widths[i] = adj.Width(nodes[i], nodes[i+1])
	}

	return Route{Nodes: nodes, Widths: widths}
}

// Route reconstructs the widest route to r.Target. A query whose source
// equals its target yields the single-node route; no path yields an empty one.
func (r *Result) Route(adj Adjacency) Route {
	if !r.HasPath() {
		return Route{}
	}
	if r.Source == r.Target {
		return Route{Nodes: []int{r.Source}, Widths: []int64{}}
	}

	return Reconstruct(adj, r.Parent, r.Target)
}

// Range is the feasible width interval [Low, High]. Unbounded is set when the
// bottleneck is PosInf (source == target), in which case High is PosInf.
type Range struct {
	Low       int64
	High      int64
	Unbounded bool
}

// String renders "[1, 20]" or "[1, +inf)".
func (rg Range) String() string {
	if rg.Unbounded {
		return fmt.Sprintf("[%d, +inf)", rg.Low)
	}

	return fmt.Sprintf("[%d, %d]", rg.Low, rg.High)
}

// FeasibleRange applies the margin rule [1, bottleneck - minWidth].
//
// Errors:
//   - ErrNoPath when bottleneck is NegInf.
//   - ErrInfeasibleRange when bottleneck - minWidth <= 0.
func FeasibleRange(bottleneck, minWidth int64) (Range, error) {
	if bottleneck == NegInf {
		return Range{}, ErrNoPath
	}
	if bottleneck == PosInf {
		return Range{Low: 1, High: PosInf, Unbounded: true}, nil
	}
	margin := bottleneck - minWidth
	if margin <= 0 {
		return Range{}, fmt.Errorf("%w: bottleneck %d, minimum width %d",
			ErrInfeasibleRange, bottleneck, minWidth)
	}

	return Range{Low: 1, High: margin}, nil
}

// FeasibleRange applies the margin rule to r's target.
func (r *Result) FeasibleRange(minWidth int64) (Range, error) {
	rg, err := FeasibleRange(r.Width(), minWidth)
	if err != nil {
		return Range{}, fmt.Errorf("%d to %d: %w", r.Source, r.Target, err)
	}

	return rg, nil
}
