// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Edge-list reader and writer.
// Determinism:
//   - Write emits roads in slice order; Load preserves file order.
// Policy:
//   - Every failure while decoding wraps ErrFormat with the offending position.
//   - Files are closed on every exit path, including validation failures.

package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// maxPrealloc bounds the road slice capacity reserved from the header.
const maxPrealloc = 1 << 16

// tokenReader pulls whitespace-separated integers from a stream and keeps
// a running token index for error messages.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns the next integer token. field names the expected value; road
// is the zero-based road index, or -1 for header fields.
func (t *tokenReader) next(field string, road int64) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("core: reading %s: %w", describe(field, road), err)
		}
		return 0, fmt.Errorf("%w: missing %s at token %d", ErrFormat, describe(field, road), t.pos)
	}
	tok := t.sc.Text()
	t.pos++
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q at token %d is not an integer", ErrFormat, describe(field, road), tok, t.pos-1)
	}

	return v, nil
}

func describe(field string, road int64) string {
	if road < 0 {
		return field
	}

	return fmt.Sprintf("road %d %s", road, field)
}

// Load decodes an edge list from r.
//
// The header must supply 1 <= numNodes <= MaxNodes and numEdges >= 0, followed by exactly
// numEdges (from, to, width) triples. Node ids must lie in [0, numNodes) and
// widths must be positive. Connectivity is not checked.
//
// Errors: ErrFormat (wrapped) on any mismatch, or the underlying read error.
// Complexity: O(E) time, O(E) space.
func Load(r io.Reader) (*Graph, error) {
	tr := newTokenReader(r)

	numNodes, err := tr.next("numNodes", -1)
	if err != nil {
		return nil, err
	}
	numEdges, err := tr.next("numEdges", -1)
	if err != nil {
		return nil, err
	}
	if numNodes < 1 {
		return nil, fmt.Errorf("%w: numNodes=%d < 1", ErrFormat, numNodes)
	}
	if numNodes > MaxNodes {
		return nil, fmt.Errorf("%w: numNodes=%d > %d", ErrFormat, numNodes, MaxNodes)
	}
	if numEdges < 0 {
		return nil, fmt.Errorf("%w: numEdges=%d < 0", ErrFormat, numEdges)
	}

	// Preallocation is capped: the header is untrusted until the triples arrive.
	g := &Graph{NumNodes: int(numNodes), Roads: make([]Road, 0, min(numEdges, maxPrealloc))}
	var from, to, width int64
	for i := int64(0); i < numEdges; i++ {
		if from, err = tr.next("from", i); err != nil {
			return nil, err
		}
		if to, err = tr.next("to", i); err != nil {
			return nil, err
		}
		if width, err = tr.next("width", i); err != nil {
			return nil, err
		}
		if !g.HasNode(int(from)) || !g.HasNode(int(to)) {
			return nil, fmt.Errorf("%w: road %d endpoints (%d,%d) outside [0,%d)",
				ErrFormat, i, from, to, numNodes)
		}
		if width <= 0 {
			return nil, fmt.Errorf("%w: road %d width=%d is not positive", ErrFormat, i, width)
		}
		g.Roads = append(g.Roads, Road{From: int(from), To: int(to), Width: width})
	}

	// The header is authoritative: anything after the last triple means the
	// count is wrong.
	if tr.sc.Scan() {
		return nil, fmt.Errorf("%w: unexpected token %q after %d roads", ErrFormat, tr.sc.Text(), numEdges)
	}
	if err = tr.sc.Err(); err != nil {
		return nil, fmt.Errorf("core: reading trailer: %w", err)
	}

	return g, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("core: load %s: %w", path, err)
	}

	return g, nil
}

// Write encodes g in the edge-list layout: a "numNodes numEdges" header
// followed by one "from to width" line per road, in slice order.
// Complexity: O(E).
func Write(w io.Writer, g *Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NumNodes, g.NumEdges()); err != nil {
		return fmt.Errorf("core: write header: %w", err)
	}
	for i, r := range g.Roads {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r.From, r.To, r.Width); err != nil {
			return fmt.Errorf("core: write road %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes g to it.
// The file is closed on every path; a close error is reported when the
// write itself succeeded.
func WriteFile(path string, g *Graph) (err error) {
	if g == nil {
		return ErrNilGraph
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("core: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("core: close %s: %w", path, cerr)
		}
	}()

	return Write(f, g)
}
