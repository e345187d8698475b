// Package core defines the road graph model shared by every other package:
// nodes are dense integer ids in [0, NumNodes), roads are undirected
// width-weighted edges, and a Graph is the raw edge list exactly as it was
// read from (or will be written to) disk.
//
// The raw list is kept verbatim. Duplicate roads, self-loops and roads at
// the global minimum width are all preserved here; deciding which of them
// are traversable is the job of the adjacency package.
//
// Edge-list file layout (whitespace-separated tokens):
//
//	<numNodes> <numEdges>
//	<from_1> <to_1> <width_1>
//	...
//	<from_numEdges> <to_numEdges> <width_numEdges>
//
// Core API:
//
//	Load(r io.Reader) (*Graph, error)   // O(E) tokens, ErrFormat on mismatch
//	LoadFile(path string) (*Graph, error)
//	Write(w io.Writer, g *Graph) error  // stable, order-preserving layout
//	WriteFile(path string, g *Graph) error
//	(*Graph).MinWidth() int64           // O(E)
//	(*Graph).NumEdges() int             // O(1)
//
// Errors:
//
//	ErrFormat    - header or edge triples do not match the file content.
//	ErrNilGraph  - a nil *Graph was passed to Write/WriteFile.
package core
