// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: Dense symmetric adjacency matrix built under the minWidth filter.

package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadwidth/core"
)

// MaxDenseOrder is the largest node count Build materializes (128 MiB of
// widths). Larger graphs must use BuildList.
const MaxDenseOrder = 1 << 12

// ErrOrderTooLarge is returned by Build when the graph exceeds MaxDenseOrder.
var ErrOrderTooLarge = errors.New("adjacency: order too large for a dense matrix")

// Matrix is a dense, symmetric N×N table of selected road widths.
// A zero entry means "no traversable road". Matrix is immutable after Build.
type Matrix struct {
	n    int
	data []int64 // row-major, len n*n
}

// Build derives the dense adjacency matrix of g.
//
// Pure and deterministic: calling it twice on the same graph yields equal
// matrices.
// Errors: core.ErrNilGraph; ErrOrderTooLarge when g.NumNodes > MaxDenseOrder.
// Complexity: O(N² + E) time, O(N²) space.
func Build(g *core.Graph) (*Matrix, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if g.NumNodes < 0 || g.NumNodes > MaxDenseOrder {
		return nil, fmt.Errorf("%w: %d nodes > %d", ErrOrderTooLarge, g.NumNodes, MaxDenseOrder)
	}
	m := &Matrix{n: g.NumNodes, data: make([]int64, g.NumNodes*g.NumNodes)}
	floor := g.MinWidth()
	for _, r := range g.Roads {
		if r.Width <= floor || r.Width <= m.Width(r.From, r.To) {
			continue
		}
		m.data[r.From*m.n+r.To] = r.Width
		m.data[r.To*m.n+r.From] = r.Width
	}

	return m, nil
}

// MustBuild is like Build but panics on error. Intended for fixed, known-small
// graphs such as tests and examples.
func MustBuild(g *core.Graph) *Matrix {
	m, err := Build(g)
	if err != nil {
		panic(err)
	}

	return m
}

// Order returns the number of nodes N.
func (m *Matrix) Order() int { return m.n }

// Width returns the selected width between u and v, or 0 if none.
// Out-of-range indices yield 0.
func (m *Matrix) Width(u, v int) int64 {
	if u < 0 || v < 0 || u >= m.n || v >= m.n {
		return 0
	}

	return m.data[u*m.n+v]
}

// Neighbors calls fn for every v != u with a positive width, in ascending v.
func (m *Matrix) Neighbors(u int, fn func(v int, w int64)) {
	if u < 0 || u >= m.n {
		return
	}
	row := m.data[u*m.n : (u+1)*m.n]
	for v, w := range row {
		if v != u && w > 0 {
			fn(v, w)
		}
	}
}

// Row returns a copy of row u, or nil when u is out of range.
func (m *Matrix) Row(u int) []int64 {
	if u < 0 || u >= m.n {
		return nil
	}
	out := make([]int64, m.n)
	copy(out, m.data[u*m.n:(u+1)*m.n])

	return out
}

// Equal reports whether m and o have the same order and identical entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Symmetric reports whether Width(i,j) == Width(j,i) for all i, j.
// Complexity: O(N²).
func (m *Matrix) Symmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}
