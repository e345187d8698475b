package query

import (
	"bytes"
	"fmt"
	"io"
)

// WriteTo renders the human-readable summary of r.
//
//	feasible width from 0 to 3: [1, 20]
//	route: 0 -(50)-> 1 -(30)-> 2 -(80)-> 3
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	switch r.Outcome {
	case OutcomeFeasible:
		fmt.Fprintf(&buf, "feasible width from %d to %d: %s\n", r.Source, r.Target, r.Range)
	case OutcomeNoPath:
		fmt.Fprintf(&buf, "no path from %d to %d: the nodes are not connected by any road wider than %d\n",
			r.Source, r.Target, r.MinWidth)
	case OutcomeInfeasible:
		fmt.Fprintf(&buf, "no feasible width from %d to %d: the widest path is limited by a road of width %d, "+
			"equal to the graph's minimum width %d\n", r.Source, r.Target, r.Bottleneck, r.MinWidth)
	}
	if r.Route != nil {
		fmt.Fprintf(&buf, "route: %s\n", r.Route)
	}

	return buf.WriteTo(w)
}
