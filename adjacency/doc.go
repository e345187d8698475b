// Package adjacency derives traversable structures from a raw core.Graph.
//
// Selection rule (shared by every representation):
//
//	for each road (u, v, w) in source order:
//	    if w > g.MinWidth() and w > stored(u, v):
//	        stored(u, v) = stored(v, u) = w
//
// Roads at the global minimum width are non-informative and never become
// traversable. Among duplicates the widest survives. Self-loops are stored
// on the diagonal but no algorithm walks them.
//
// Two representations are provided:
//
//	Matrix - dense N×N, O(N²) memory, O(1) Width lookups; N <= MaxDenseOrder.
//	List   - per-node neighbor slices sorted by id, O(N+E) memory.
//
// Both visit neighbors in ascending id order, so any algorithm written against
// their common method set produces identical results on either.
package adjacency
