package graph

import "github.com/ismaili-ziad/GP2/label"

// Copy returns a deep structural copy of g: every node, edge, label,
// incidence array and free-slot stack, and both class indices, with every
// stable index preserved. It is grounded directly on the original
// runtime's copyGraph three-pass algorithm: edges are copied first (labels
// only), then nodes (translating each incidence slot's edge handle to the
// copy), then the copied edges' source/target are rewritten to point at the
// copied nodes.
func (g *Graph) Copy() *Graph {
	out := &Graph{
		nodesByClass: make(map[label.Class]*classList[*Node]),
		edgesByClass: make(map[label.Class]*classList[*Edge]),
		roots:        &classList[*Node]{},
		limits:       g.limits,
	}

	edgeMap := make(map[*Edge]*Edge, g.edges.Len())
	nodeMap := make(map[*Node]*Node, g.nodes.Len())

	// Pass 1: copy edges, labels only. Endpoints are fixed in pass 3.
	out.edges = g.edges.Clone(func(e *Edge) *Edge {
		ne := &Edge{bidirectional: e.bidirectional, label: e.label.Clone(), class: e.class}
		edgeMap[e] = ne

		return ne
	})

	// Pass 2: copy nodes, translating each incidence slot's edge handle.
	out.nodes = g.nodes.Clone(func(n *Node) *Node {
		nn := newNode(n.root, n.label.Clone(), n.class)
		nn.outInc = n.outInc.Clone(func(ref *incidenceRef) *incidenceRef {
			return &incidenceRef{edge: edgeMap[ref.edge]}
		})
		nn.inInc = n.inInc.Clone(func(ref *incidenceRef) *incidenceRef {
			return &incidenceRef{edge: edgeMap[ref.edge]}
		})
		nodeMap[n] = nn

		return nn
	})

	// Pass 3: rewrite copied edges' source/target to the copied nodes.
	g.edges.Iterate(func(_ int, e *Edge) bool {
		ne := edgeMap[e]
		ne.source = nodeMap[e.source]
		ne.target = nodeMap[e.target]

		return true
	})

	// Rebuild the secondary indices and root list against the copies. The
	// root list is prepended tail-first so the copy keeps the original's
	// order.
	g.nodes.Iterate(func(_ int, n *Node) bool {
		nn := nodeMap[n]
		out.classListForNode(nn.class).Prepend(nn)

		return true
	})
	roots := g.roots.ToSlice()
	for i := len(roots) - 1; i >= 0; i-- {
		out.roots.Prepend(nodeMap[roots[i]])
	}
	g.edges.Iterate(func(_ int, e *Edge) bool {
		out.classListForEdge(edgeMap[e].class).Prepend(edgeMap[e])

		return true
	})

	return out
}
