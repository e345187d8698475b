// SPDX-License-Identifier: MIT
//
// File: solve.go
// Role: Single-source bottleneck relaxation (FIFO and max-heap frontiers).

package widest

import (
	"container/heap"
	"fmt"
)

// Solve computes widest-path bottlenecks from source over adj and records
// target for later queries on the Result.
//
// Preconditions (checked in order):
//  1. adj is non-nil (ErrNilAdjacency).
//  2. source and target lie in [0, adj.Order()) (ErrVertexNotFound).
//
// An unreachable target is not an error: Result.HasPath reports false and
// Result.Width returns NegInf.
func Solve(adj Adjacency, source, target int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := adj.Order()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrVertexNotFound, source, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrVertexNotFound, target, n)
	}

	r := &runner{
		adj:     adj,
		options: cfg,
		res: &Result{
			Source:     source,
			Target:     target,
			Parent:     make([]int, n),
			Bottleneck: make([]int64, n),
		},
	}
	r.init()
	switch cfg.Strategy {
	case StrategyHeap:
		r.processHeap()
	default:
		r.processQueue()
	}

	return r.res, nil
}

// runner holds the mutable state for one Solve call.
type runner struct {
	adj     Adjacency
	options Options
	res     *Result
}

// init sets every bottleneck to NegInf and parent to -1, then opens the source.
func (r *runner) init() {
	for v := range r.res.Bottleneck {
		r.res.Bottleneck[v] = NegInf
		r.res.Parent[v] = -1
	}
	r.res.Bottleneck[r.res.Source] = PosInf
}

// candidate is the bottleneck v would get when reached from u over width w.
func (r *runner) candidate(u int, w int64) int64 {
	if b := r.res.Bottleneck[u]; b < w {
		return b
	}

	return w
}

// processQueue runs the FIFO relaxation until the queue drains.
func (r *runner) processQueue() {
	queue := make([]int, 0, r.adj.Order())
	queue = append(queue, r.res.Source)
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		r.res.Dequeues++
		r.options.OnDequeue(curr)

		r.adj.Neighbors(curr, func(v int, w int64) {
			if v == curr || w <= 0 {
				return
			}
			c := r.candidate(curr, w)
			if c <= r.res.Bottleneck[v] {
				return
			}
			r.res.Bottleneck[v] = c
			r.res.Parent[v] = curr
			r.options.OnRelax(v, curr, c)
			queue = append(queue, v)
		})
	}
}

// processHeap expands the widest pending node first. Stale heap entries are
// skipped when popped (lazy decrease-key).
func (r *runner) processHeap() {
	done := make([]bool, r.adj.Order())
	pq := make(nodePQ, 0, r.adj.Order())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: r.res.Source, width: PosInf})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if done[u] || item.width < r.res.Bottleneck[u] {
			continue
		}
		done[u] = true
		r.res.Dequeues++
		r.options.OnDequeue(u)

		r.adj.Neighbors(u, func(v int, w int64) {
			if v == u || w <= 0 || done[v] {
				return
			}
			c := r.candidate(u, w)
			if c <= r.res.Bottleneck[v] {
				return
			}
			r.res.Bottleneck[v] = c
			r.res.Parent[v] = u
			r.options.OnRelax(v, u, c)
			heap.Push(&pq, &nodeItem{id: v, width: c})
		})
	}
}

// nodeItem is a frontier entry: a node and the bottleneck it was pushed with.
type nodeItem struct {
	id    int
	width int64
}

// nodePQ is a max-heap of *nodeItem ordered by width, ties by lower id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].width != pq[j].width {
		return pq[i].width > pq[j].width
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
