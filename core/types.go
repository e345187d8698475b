// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Road and Graph types plus the package sentinel errors.

package core

import (
	"errors"
	"fmt"
)

// MaxNodes is the largest node count Load accepts. Per-node solver state
// stays in the hundreds of megabytes at this bound.
const MaxNodes = 1 << 22

// Sentinel errors for core graph operations.
var (
	// ErrFormat indicates that an edge-list source is truncated, corrupt, or
	// disagrees with its own header.
	ErrFormat = errors.New("core: malformed edge list")

	// ErrNilGraph indicates that a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Road is an undirected connection between two nodes with a positive width.
//
// From and To are node ids in [0, Graph.NumNodes). The orientation only
// records the order in which the road appeared in the source list.
type Road struct {
	From  int   // first endpoint
	To    int   // second endpoint
	Width int64 // capacity of the road, always > 0
}

// String renders the road in edge-list form ("from to width").
func (r Road) String() string {
	return fmt.Sprintf("%d %d %d", r.From, r.To, r.Width)
}

// Graph is the raw road network: a node count and the list of roads in
// source order. It is built once per query and treated as immutable.
type Graph struct {
	// NumNodes is the number of nodes; valid ids are 0..NumNodes-1.
	NumNodes int

	// Roads is the edge list, duplicates and self-loops included.
	Roads []Road
}

// NewGraph returns a Graph over numNodes nodes holding the given roads.
// The roads slice is used as-is (not copied).
func NewGraph(numNodes int, roads ...Road) *Graph {
	return &Graph{NumNodes: numNodes, Roads: roads}
}

// NumEdges reports the number of roads in the raw list.
// Complexity: O(1).
func (g *Graph) NumEdges() int {
	return len(g.Roads)
}

// MinWidth returns the minimum width over all roads in the raw list,
// or 0 when the list is empty.
// Complexity: O(E).
func (g *Graph) MinWidth() int64 {
	if len(g.Roads) == 0 {
		return 0
	}
	min := g.Roads[0].Width
	for _, r := range g.Roads[1:] {
		if r.Width < min {
			min = r.Width
		}
	}

	return min
}

// HasNode reports whether id is a valid node of g.
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < g.NumNodes
}
