// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinels, adjacency contract, options and result types.

package widest

import (
	"errors"
	"math"
)

// Sentinel errors returned by this package.
var (
	// ErrNilAdjacency indicates that Solve received a nil adjacency.
	ErrNilAdjacency = errors.New("widest: adjacency is nil")

	// ErrVertexNotFound indicates a source or target outside [0, Order()).
	ErrVertexNotFound = errors.New("widest: vertex not found")

	// ErrNoPath indicates that the target was never relaxed from the source.
	ErrNoPath = errors.New("widest: no path between source and target")

	// ErrInfeasibleRange indicates that a path exists but its bottleneck does
	// not exceed the graph's global minimum width.
	ErrInfeasibleRange = errors.New("widest: bottleneck does not exceed minimum width")
)

// Bottleneck sentinels.
const (
	// PosInf is the bottleneck of the source itself.
	PosInf int64 = math.MaxInt64

	// NegInf marks a node that was never reached.
	NegInf int64 = math.MinInt64
)

// Adjacency is the read-only view Solve and Reconstruct need.
// Both adjacency.Matrix and adjacency.List satisfy it.
type Adjacency interface {
	// Order returns the number of nodes.
	Order() int
	// Width returns the traversable width between u and v, 0 if none.
	Width(u, v int) int64
	// Neighbors calls fn for each traversable neighbor of u in ascending id.
	Neighbors(u int, fn func(v int, w int64))
}

// Strategy selects the relaxation order.
type Strategy int

const (
	// StrategyQueue processes nodes in FIFO order, re-enqueueing on every
	// improvement.
	StrategyQueue Strategy = iota

	// StrategyHeap processes the widest pending node first and finalizes
	// each node once.
	StrategyHeap
)

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyQueue:
		return "queue"
	case StrategyHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// Options configures Solve.
type Options struct {
	Strategy Strategy

	// OnDequeue is called each time a node is taken from the frontier.
	OnDequeue func(u int)

	// OnRelax is called when v's bottleneck improves to w via parent.
	OnRelax func(v, parent int, w int64)
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns FIFO relaxation with no-op hooks.
func DefaultOptions() Options {
	return Options{
		Strategy:  StrategyQueue,
		OnDequeue: func(int) {},
		OnRelax:   func(int, int, int64) {},
	}
}

// WithStrategy selects the relaxation strategy. Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != StrategyQueue && s != StrategyHeap {
		panic("widest: WithStrategy(unknown)")
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnDequeue registers a callback run whenever a node leaves the frontier.
func WithOnDequeue(fn func(u int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnRelax registers a callback run on every successful relaxation.
func WithOnRelax(fn func(v, parent int, w int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Result is the outcome of a single-source solve.
type Result struct {
	Source int
	Target int

	// Parent[v] is v's predecessor on its widest path, -1 for the source
	// and for unreached nodes.
	Parent []int

	// Bottleneck[v] is the best achievable minimum road width from Source to v.
	Bottleneck []int64

	// Dequeues counts frontier pops, including repeated visits.
	Dequeues int
}

// Reached reports whether v was reached from the source.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Bottleneck) && r.Bottleneck[v] != NegInf
}

// HasPath reports whether Target is reachable from Source.
func (r *Result) HasPath() bool {
	return r.Reached(r.Target)
}

// Width returns Bottleneck[Target] (NegInf when there is no path).
func (r *Result) Width() int64 {
	if r.Target < 0 || r.Target >= len(r.Bottleneck) {
		return NegInf
	}

	return r.Bottleneck[r.Target]
}
