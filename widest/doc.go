// Package widest solves the maximum bottleneck ("widest") path problem on an
// undirected road graph: among all paths between two nodes, find one that
// maximizes the narrowest road along it.
//
// Overview:
//
//   - Solve computes, from a single source, the best achievable bottleneck
//     to every node plus a parent pointer per node.
//   - Reconstruct walks parent pointers back from a target to produce the
//     ordered route and the width of each road on it.
//   - FeasibleRange turns a bottleneck into the usable margin
//     [1, bottleneck - minWidth] above the graph's global minimum width.
//
// Algorithm (StrategyQueue, the default):
//
//	bottleneck[*] = NegInf; bottleneck[source] = PosInf; parent[*] = -1
//	queue = [source]
//	while queue not empty:
//	    curr = pop front
//	    for each neighbor i of curr (ascending id, self-loops skipped):
//	        c = min(bottleneck[curr], width(curr, i))
//	        if c > bottleneck[i]:
//	            bottleneck[i] = c; parent[i] = curr; push back i
//
// A node may be enqueued more than once when it is relaxed again later; this
// keeps the result exact on any graph at the cost of reprocessing.
//
// StrategyHeap replaces the FIFO queue with a max-heap keyed on bottleneck
// (lazy decrease-key, each node finalized once). Bottleneck values are
// identical to StrategyQueue; when two predecessors offer the same width the
// chosen parent may differ, but the parent invariant below holds either way.
//
// Invariants on the result:
//
//   - Bottleneck[source] == PosInf and Parent[source] == -1.
//   - For every reached v != source:
//     Bottleneck[v] == min(Bottleneck[Parent[v]], Width(Parent[v], v)).
//   - Unreached nodes keep Bottleneck == NegInf; this is "no path", never a
//     zero-width path.
//
// Complexity:
//
//   - StrategyQueue: O(N·E) worst case relaxations over the adjacency.
//   - StrategyHeap:  O((N + E) log N).
//
// Errors (sentinel):
//
//	ErrNilAdjacency    - nil adjacency passed to Solve.
//	ErrVertexNotFound  - source or target outside [0, Order()).
//	ErrNoPath          - target not reachable (from FeasibleRange).
//	ErrInfeasibleRange - path exists but bottleneck <= minWidth.
package widest
