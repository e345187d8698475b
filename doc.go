// Package roadwidth finds the widest route through a road network: the path
// between two nodes whose narrowest road is as wide as possible.
//
// Under the hood, everything is organized under small subpackages:
//
//	core/      - Road and Graph types, edge-list file codec
//	adjacency/ - dense Matrix and sparse List, filtered by the minimum width
//	builder/   - seeded random connected graph generator
//	widest/    - bottleneck relaxation, route reconstruction, feasible range
//	query/     - one end-to-end query: load, solve, report
//	config/    - optional YAML configuration
//	cmd/       - the roadwidth command
//
// Quick ASCII example:
//
//	0 ──50── 1
//	│        │
//	10       30
//	│        │
//	3 ──80── 2
//
// The direct road 0─3 sits at the global minimum width and is ignored; the
// widest route 0→1→2→3 has bottleneck 30, so the feasible width range is
// [1, 30-10] = [1, 20].
//
//	roadwidth -g 1000 5000 roads.txt
//	roadwidth -t 0 999 roads.txt --path
package roadwidth
