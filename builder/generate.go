// SPDX-License-Identifier: MIT
// Package: roadwidth/builder
//
// generate.go: random connected road graph generator.
//
// Contract:
//   - 1 ≤ numNodes ≤ core.MaxNodes (else ErrInvalidArgument), so every
//     generated graph can be loaded back.
//   - numNodes-1 ≤ numEdges ≤ numNodes(numNodes-1)/2 (else ErrInvalidArgument).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Validation happens before any RNG draw or allocation proportional to input.
//
// Complexity:
//   - Time: O(numNodes + numEdges).
//   - Space: O(numNodes + numEdges).
//
// Determinism:
//   - One Perm(numNodes) draw, then one width draw per road in output order.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadwidth/core"
)

const methodGenerate = "Generate"

// MaxEdges returns n(n-1)/2, the edge count of a complete simple graph on n
// nodes, saturating at math.MaxInt.
func MaxEdges(numNodes int) int {
	if numNodes < 2 {
		return 0
	}
	// Halve the even factor first; the product then only overflows when the
	// true result does.
	a, b := numNodes, numNodes-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}

	return a * b
}

// ValidateCounts checks that (numNodes, numEdges) can form a connected simple
// graph. It returns a wrapped ErrInvalidArgument otherwise.
func ValidateCounts(numNodes, numEdges int) error {
	if numNodes < 1 {
		return fmt.Errorf("%s: numNodes=%d < 1: %w", methodGenerate, numNodes, ErrInvalidArgument)
	}
	if numNodes > core.MaxNodes {
		return fmt.Errorf("%s: numNodes=%d > %d: %w", methodGenerate, numNodes, core.MaxNodes, ErrInvalidArgument)
	}
	if numEdges < numNodes-1 {
		return fmt.Errorf("%s: numEdges=%d < numNodes-1=%d, graph cannot be connected: %w",
			methodGenerate, numEdges, numNodes-1, ErrInvalidArgument)
	}
	if limit := MaxEdges(numNodes); numEdges > limit {
		return fmt.Errorf("%s: numEdges=%d > numNodes(numNodes-1)/2=%d: %w",
			methodGenerate, numEdges, limit, ErrInvalidArgument)
	}

	return nil
}

// Generate returns a random connected graph with exactly numEdges roads over
// numNodes nodes.
func Generate(numNodes, numEdges int, opts ...Option) (*core.Graph, error) {
	// 1) Validate counts first so no RNG state is consumed on bad input.
	if err := ValidateCounts(numNodes, numEdges); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	// 2) Uniform node order.
	nodes := cfg.rng.Perm(numNodes)
	g := &core.Graph{NumNodes: numNodes, Roads: make([]core.Road, 0, numEdges)}

	// 3) Spanning chain guarantees connectivity by construction.
	for i := 0; i+1 < numNodes; i++ {
		g.Roads = append(g.Roads, core.Road{From: nodes[i], To: nodes[i+1], Width: cfg.widthFn(cfg.rng)})
	}

	// 4) Remaining roads walk the permutation cyclically; repeats are kept.
	extra := numEdges - (numNodes - 1)
	for i := 0; i < extra; i++ {
		g.Roads = append(g.Roads, core.Road{
			From:  nodes[i%numNodes],
			To:    nodes[(i+1)%numNodes],
			Width: cfg.widthFn(cfg.rng),
		})
	}

	return g, nil
}
