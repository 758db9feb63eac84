package graph

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/ismaili-ziad/GP2/slotset"
)

// Validate walks g and checks all seven global invariants from the data
// model, collecting one diagnostic per violation. It returns (true, nil)
// when every invariant holds, or (false, err) with err a *multierror.Error
// enumerating every violation found.
func Validate(g *Graph) (bool, error) {
	var result *multierror.Error

	// Invariant 1: every non-empty node slot's own recorded index equals
	// that slot.
	g.nodes.Iterate(func(idx int, n *Node) bool {
		if n.Index() != idx {
			result = multierror.Append(result, fmt.Errorf("node at slot %d reports index %d", idx, n.Index()))
		}

		return true
	})
	g.edges.Iterate(func(idx int, e *Edge) bool {
		if e.Index() != idx {
			result = multierror.Append(result, fmt.Errorf("edge at slot %d reports index %d", idx, e.Index()))
		}

		return true
	})

	// Invariant 2: every empty slot below a slotted container's high-water
	// mark appears exactly once in its free-slot stack.
	if err := g.nodes.CheckInvariants(); err != nil {
		result = multierror.Append(result, fmt.Errorf("node container: %w", err))
	}
	if err := g.edges.CheckInvariants(); err != nil {
		result = multierror.Append(result, fmt.Errorf("edge container: %w", err))
	}
	g.nodes.Iterate(func(_ int, n *Node) bool {
		if err := n.outInc.CheckInvariants(); err != nil {
			result = multierror.Append(result, fmt.Errorf("node %d out-incidence: %w", n.Index(), err))
		}
		if err := n.inInc.CheckInvariants(); err != nil {
			result = multierror.Append(result, fmt.Errorf("node %d in-incidence: %w", n.Index(), err))
		}

		return true
	})

	// Invariant 3: number_of_nodes/edges is exactly the live count.
	// (Trivially true in this implementation: NumNodes/NumEdges are
	// computed directly from the slotted container's occupied count, so
	// there is no separate counter that could drift. Checked anyway so
	// the predicate documents the invariant it subsumes.)
	if g.NumNodes() != g.nodes.Len() {
		result = multierror.Append(result, fmt.Errorf("node count %d does not match container length %d", g.NumNodes(), g.nodes.Len()))
	}
	if g.NumEdges() != g.edges.Len() {
		result = multierror.Append(result, fmt.Errorf("edge count %d does not match container length %d", g.NumEdges(), g.edges.Len()))
	}

	// Invariant 4: each edge appears in its source's out-incidence and its
	// target's in-incidence, each exactly once. Invariant 5: degree
	// counters equal incidence population (trivially true here, same
	// reasoning as invariant 3 above).
	g.edges.Iterate(func(_ int, e *Edge) bool {
		if occurrences(e.source.outInc, e) != 1 {
			result = multierror.Append(result, fmt.Errorf("edge %d does not appear exactly once in source %d's out-incidence", e.Index(), e.source.Index()))
		}
		if occurrences(e.target.inInc, e) != 1 {
			result = multierror.Append(result, fmt.Errorf("edge %d does not appear exactly once in target %d's in-incidence", e.Index(), e.target.Index()))
		}

		return true
	})

	// Invariant 6: class-index membership.
	g.nodes.Iterate(func(_ int, n *Node) bool {
		for c, l := range g.nodesByClass {
			in := l.Contains(n)
			if c == n.class && !in {
				result = multierror.Append(result, fmt.Errorf("node %d missing from its own class %s", n.Index(), n.class))
			}
			if c != n.class && in {
				result = multierror.Append(result, fmt.Errorf("node %d present in foreign class %s", n.Index(), c))
			}
		}

		return true
	})
	g.edges.Iterate(func(_ int, e *Edge) bool {
		for c, l := range g.edgesByClass {
			in := l.Contains(e)
			if c == e.class && !in {
				result = multierror.Append(result, fmt.Errorf("edge %d missing from its own class %s", e.Index(), e.class))
			}
			if c != e.class && in {
				result = multierror.Append(result, fmt.Errorf("edge %d present in foreign class %s", e.Index(), c))
			}
		}

		return true
	})

	// Invariant 7: root flag agrees with root-list membership.
	g.nodes.Iterate(func(_ int, n *Node) bool {
		in := g.roots.Contains(n)
		if n.root != in {
			result = multierror.Append(result, fmt.Errorf("node %d root flag %v disagrees with root-list membership %v", n.Index(), n.root, in))
		}

		return true
	})

	if result == nil {
		return true, nil
	}

	return false, result
}

func occurrences(inc *slotset.Set[*incidenceRef], e *Edge) int {
	n := 0
	inc.Iterate(func(_ int, ref *incidenceRef) bool {
		if ref.edge == e {
			n++
		}

		return true
	})

	return n
}
