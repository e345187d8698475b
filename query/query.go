// Package query runs one widest-path query end to end: load the edge list,
// derive the adjacency, solve, apply the feasible-width rule and optionally
// reconstruct the route.
//
// "No path" and "no feasible width" are first-class outcomes reported on the
// Report, not errors. Run only fails when the query cannot be evaluated at
// all (unreadable or malformed file, node ids out of range).
package query

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/roadwidth/adjacency"
	"github.com/katalvlaran/roadwidth/core"
	"github.com/katalvlaran/roadwidth/widest"
)

// Representation selects the adjacency structure used by the solver.
type Representation int

const (
	// Dense uses adjacency.Matrix.
	Dense Representation = iota
	// Sparse uses adjacency.List.
	Sparse
)

// ParseRepresentation maps "dense"/"sparse" to a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch s {
	case "dense":
		return Dense, nil
	case "sparse":
		return Sparse, nil
	default:
		return Dense, fmt.Errorf("query: unknown representation %q", s)
	}
}

// ParseStrategy maps "queue"/"heap" to a widest.Strategy.
func ParseStrategy(s string) (widest.Strategy, error) {
	switch s {
	case "queue":
		return widest.StrategyQueue, nil
	case "heap":
		return widest.StrategyHeap, nil
	default:
		return widest.StrategyQueue, fmt.Errorf("query: unknown strategy %q", s)
	}
}

// Outcome classifies a completed query.
type Outcome int

const (
	// OutcomeFeasible means a path exists with a positive margin.
	OutcomeFeasible Outcome = iota
	// OutcomeNoPath means source and target are not connected.
	OutcomeNoPath
	// OutcomeInfeasible means a path exists but its bottleneck does not
	// exceed the graph's minimum width.
	OutcomeInfeasible
)

// String returns a short label for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeFeasible:
		return "feasible"
	case OutcomeNoPath:
		return "no-path"
	case OutcomeInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Request describes one query.
type Request struct {
	Path           string // edge-list file
	Source         int
	Target         int
	Reconstruct    bool
	Representation Representation
	Strategy       widest.Strategy
}

// Report is the summary of a completed query.
type Report struct {
	Source     int
	Target     int
	NumNodes   int
	NumEdges   int
	MinWidth   int64
	Bottleneck int64
	Outcome    Outcome
	Range      widest.Range

	// Route is set only when the request asked for reconstruction and a
	// path exists.
	Route *widest.Route
}

// Options configures Run.
type Options struct {
	Logger *slog.Logger
}

// Option is a functional option for Run.
type Option func(*Options)

// WithLogger routes Run's diagnostics to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Run loads req.Path and evaluates the query.
func Run(req Request, opts ...Option) (*Report, error) {
	o := Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.With("source", req.Source, "target", req.Target)

	g, err := core.LoadFile(req.Path)
	if err != nil {
		return nil, err
	}
	log.Debug("graph loaded", "path", req.Path, "nodes", g.NumNodes, "edges", g.NumEdges(), "min_width", g.MinWidth())

	return Evaluate(g, req, log)
}

// Evaluate runs the query on an already loaded graph; req.Path is ignored.
func Evaluate(g *core.Graph, req Request, log *slog.Logger) (*Report, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	adj, err := buildAdjacency(g, req.Representation, log)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	res, err := widest.Solve(adj, req.Source, req.Target, widest.WithStrategy(req.Strategy))
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	log.Debug("solved", "strategy", req.Strategy.String(), "dequeues", res.Dequeues, "bottleneck", res.Width())

	rep := &Report{
		Source:     req.Source,
		Target:     req.Target,
		NumNodes:   g.NumNodes,
		NumEdges:   g.NumEdges(),
		MinWidth:   g.MinWidth(),
		Bottleneck: res.Width(),
	}

	rg, err := res.FeasibleRange(rep.MinWidth)
	switch {
	case errors.Is(err, widest.ErrNoPath):
		rep.Outcome = OutcomeNoPath
	case errors.Is(err, widest.ErrInfeasibleRange):
		rep.Outcome = OutcomeInfeasible
	case err != nil:
		return nil, fmt.Errorf("query: %w", err)
	default:
		rep.Outcome = OutcomeFeasible
		rep.Range = rg
	}

	if req.Reconstruct && res.HasPath() {
		route := res.Route(adj)
		rep.Route = &route
	}
	if rep.Outcome == OutcomeFeasible {
		log.Info("query finished", "outcome", rep.Outcome.String(), "range", rep.Range.String())
	} else {
		log.Info("query finished", "outcome", rep.Outcome.String())
	}

	return rep, nil
}

// buildAdjacency derives the requested representation. Graphs too large for
// a dense matrix fall back to the sparse list.
func buildAdjacency(g *core.Graph, repr Representation, log *slog.Logger) (widest.Adjacency, error) {
	if repr == Sparse {
		return adjacency.BuildList(g), nil
	}
	m, err := adjacency.Build(g)
	if errors.Is(err, adjacency.ErrOrderTooLarge) {
		log.Warn("dense adjacency too large, using sparse", "nodes", g.NumNodes, "max_dense", adjacency.MaxDenseOrder)
		return adjacency.BuildList(g), nil
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}
