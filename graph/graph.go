// Package graph implements the host-graph store: nodes, edges, the
// label-class secondary index, and the seven global invariants that must
// hold after every public mutation. It is the core of the GP2 runtime;
// packages snapshot and gptext build on its read-only query surface.
package graph

import (
	"errors"

	"github.com/ismaili-ziad/GP2/label"
	"github.com/ismaili-ziad/GP2/slotset"
)

// Graph is a host graph: a slotted node container, a slotted edge
// container, the nodes-by-class and edges-by-class secondary indices, and
// the root-node list. The graph exclusively owns its nodes and edges; all
// other references into it (edge endpoints, class-index entries, root-list
// entries) are weak.
type Graph struct {
	nodes *slotset.Set[*Node]
	edges *slotset.Set[*Edge]

	nodesByClass map[label.Class]*classList[*Node]
	edgesByClass map[label.Class]*classList[*Edge]
	roots        *classList[*Node]

	limits Limits
}

// NewGraph returns an empty graph configured by opts.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		nodes:        slotset.New[*Node](),
		edges:        slotset.New[*Edge](),
		nodesByClass: make(map[label.Class]*classList[*Node]),
		edgesByClass: make(map[label.Class]*classList[*Edge]),
		roots:        &classList[*Node]{},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

func checkHostMark(m label.Mark) error {
	if m == label.MarkAny || m == label.MarkAnyPlus {
		return ErrMarkNotHostGraph
	}

	return nil
}

func translateSlotErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, slotset.ErrOutOfRange):
		return ErrOutOfRange
	case errors.Is(err, slotset.ErrEmptySlot):
		return ErrEmptySlot
	default:
		return err
	}
}

func (g *Graph) classListForNode(c label.Class) *classList[*Node] {
	l, ok := g.nodesByClass[c]
	if !ok {
		l = &classList[*Node]{}
		g.nodesByClass[c] = l
	}

	return l
}

func (g *Graph) classListForEdge(c label.Class) *classList[*Edge] {
	l, ok := g.edgesByClass[c]
	if !ok {
		l = &classList[*Edge]{}
		g.edgesByClass[c] = l
	}

	return l
}

// removeNodeFromClass removes n from its class list, collapsing the map
// entry when the list becomes empty, matching the original runtime's
// g_hash_table_remove once the backing GSList goes to NULL.
func (g *Graph) removeNodeFromClass(n *Node) {
	l := g.classListForNode(n.class)
	l.Remove(n)
	if l.Len() == 0 {
		delete(g.nodesByClass, n.class)
	}
}

// removeEdgeFromClass is removeNodeFromClass's edge counterpart.
func (g *Graph) removeEdgeFromClass(e *Edge) {
	l := g.classListForEdge(e.class)
	l.Remove(e)
	if l.Len() == 0 {
		delete(g.edgesByClass, e.class)
	}
}

func (g *Graph) isLiveNode(n *Node) bool {
	if n == nil {
		return false
	}
	got, err := g.nodes.Get(n.Index())

	return err == nil && got == n
}

// NumNodes returns the number of live nodes.
func (g *Graph) NumNodes() int { return g.nodes.Len() }

// NumEdges returns the number of live edges.
func (g *Graph) NumEdges() int { return g.edges.Len() }

// Nodes returns every live node in ascending index order. It is a
// read-only enumeration used by serialisation and by the matcher's initial
// candidate scan.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, g.nodes.Len())
	g.nodes.Iterate(func(_ int, n *Node) bool {
		out = append(out, n)

		return true
	})

	return out
}

// Edges returns every live edge in ascending index order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.edges.Len())
	g.edges.Iterate(func(_ int, e *Edge) bool {
		out = append(out, e)

		return true
	})

	return out
}

// AddNode creates a node with the given root flag and label, computes its
// label class, inserts it into the node container, prepends it onto the
// nodes-by-class list for that class and, if root, onto the root list.
func (g *Graph) AddNode(root bool, lbl label.Label) (*Node, error) {
	if err := checkHostMark(lbl.Mark); err != nil {
		return nil, err
	}
	class, err := label.ClassOf(lbl)
	if err != nil {
		return nil, err
	}
	if g.limits.MaxNodes > 0 && g.nodes.Len() >= g.limits.MaxNodes {
		return nil, ErrMaxNodesExceeded
	}

	n := newNode(root, lbl, class)
	g.nodes.Insert(n)
	g.classListForNode(class).Prepend(n)
	if root {
		g.roots.Prepend(n)
	}

	return n, nil
}

// AddEdge creates an edge between source and target, both of which must be
// live nodes of this graph. It inserts the edge into the edge container,
// into source's out-incidence and target's in-incidence, and prepends it
// onto the edges-by-class list.
func (g *Graph) AddEdge(bidirectional bool, lbl label.Label, source, target *Node) (*Edge, error) {
	if err := checkHostMark(lbl.Mark); err != nil {
		return nil, err
	}
	if !g.isLiveNode(source) || !g.isLiveNode(target) {
		return nil, ErrNodeNotLive
	}
	class, err := label.ClassOf(lbl)
	if err != nil {
		return nil, err
	}
	if g.limits.MaxEdges > 0 && g.edges.Len() >= g.limits.MaxEdges {
		return nil, ErrMaxEdgesExceeded
	}
	if g.limits.MaxIncidentPerNode > 0 {
		if source.OutDegree()+1 > g.limits.MaxIncidentPerNode || target.InDegree()+1 > g.limits.MaxIncidentPerNode {
			return nil, ErrMaxIncidenceExceeded
		}
	}

	e := &Edge{bidirectional: bidirectional, label: lbl, class: class, source: source, target: target}
	g.edges.Insert(e)
	source.outInc.Insert(&incidenceRef{edge: e})
	target.inInc.Insert(&incidenceRef{edge: e})
	g.classListForEdge(class).Prepend(e)

	return e, nil
}

// RemoveNode removes the node at index. It fails with ErrDanglingIncidence
// if the node still has any incident edges; the graph is left unchanged in
// that case.
func (g *Graph) RemoveNode(index int) error {
	n, err := g.nodes.Get(index)
	if err != nil {
		return translateSlotErr(err)
	}
	if n.InDegree()+n.OutDegree() > 0 {
		return ErrDanglingIncidence
	}

	g.removeNodeFromClass(n)
	if n.root {
		g.roots.Remove(n)
	}

	return g.nodes.Remove(index)
}

// RemoveEdge removes the edge at index. It scans the source's
// out-incidence and the target's in-incidence to find and evict the slot
// holding this edge, using the trailing-slot collapse rule on each, then
// removes the edge from the class index and the edge container.
func (g *Graph) RemoveEdge(index int) error {
	e, err := g.edges.Get(index)
	if err != nil {
		return translateSlotErr(err)
	}

	removeIncidence(e.source.outInc, e)
	removeIncidence(e.target.inInc, e)
	g.removeEdgeFromClass(e)

	return g.edges.Remove(index)
}

func removeIncidence(inc *slotset.Set[*incidenceRef], e *Edge) {
	var found int = -1
	inc.Iterate(func(idx int, ref *incidenceRef) bool {
		if ref.edge == e {
			found = idx
			return false
		}
		return true
	})
	if found >= 0 {
		_ = inc.Remove(found)
	}
}

// RelabelNode optionally flips n's root flag (adding or removing it from
// the root list) and optionally replaces its label, recomputing and, if it
// changed, re-indexing its class.
func (g *Graph) RelabelNode(n *Node, newLabel label.Label, changeLabel, toggleRoot bool) error {
	var newClass label.Class
	if changeLabel {
		if err := checkHostMark(newLabel.Mark); err != nil {
			return err
		}
		c, err := label.ClassOf(newLabel)
		if err != nil {
			return err
		}
		newClass = c
	}

	if toggleRoot {
		n.root = !n.root
		if n.root {
			g.roots.Prepend(n)
		} else {
			g.roots.Remove(n)
		}
	}
	if changeLabel {
		if newClass != n.class {
			g.classListForNode(n.class).Remove(n)
			n.class = newClass
			g.classListForNode(newClass).Prepend(n)
		}
		n.label = newLabel
	}

	return nil
}

// RelabelEdge optionally replaces e's label, recomputing and, if it
// changed, re-indexing its class, and optionally flips its bidirectional
// flag.
func (g *Graph) RelabelEdge(e *Edge, newLabel label.Label, changeLabel, toggleBidirectional bool) error {
	var newClass label.Class
	if changeLabel {
		if err := checkHostMark(newLabel.Mark); err != nil {
			return err
		}
		c, err := label.ClassOf(newLabel)
		if err != nil {
			return err
		}
		newClass = c
	}

	if toggleBidirectional {
		e.bidirectional = !e.bidirectional
	}
	if changeLabel {
		if newClass != e.class {
			g.classListForEdge(e.class).Remove(e)
			e.class = newClass
			g.classListForEdge(newClass).Prepend(e)
		}
		e.label = newLabel
	}

	return nil
}

// Node returns the node at index.
func (g *Graph) Node(index int) (*Node, error) {
	n, err := g.nodes.Get(index)

	return n, translateSlotErr(err)
}

// Edge returns the edge at index.
func (g *Graph) Edge(index int) (*Edge, error) {
	e, err := g.edges.Get(index)

	return e, translateSlotErr(err)
}

// Source returns e's source node.
func (g *Graph) Source(e *Edge) *Node { return e.source }

// Target returns e's target node.
func (g *Graph) Target(e *Edge) *Node { return e.target }

// InDegree returns n's in-degree.
func (g *Graph) InDegree(n *Node) int { return n.InDegree() }

// OutDegree returns n's out-degree.
func (g *Graph) OutDegree(n *Node) int { return n.OutDegree() }

// OutEdge returns the k-th slot of n's out-incidence.
func (g *Graph) OutEdge(n *Node, k int) (*Edge, error) {
	ref, err := n.outInc.Get(k)
	if err != nil {
		return nil, translateSlotErr(err)
	}

	return ref.edge, nil
}

// InEdge returns the k-th slot of n's in-incidence.
func (g *Graph) InEdge(n *Node, k int) (*Edge, error) {
	ref, err := n.inInc.Get(k)
	if err != nil {
		return nil, translateSlotErr(err)
	}

	return ref.edge, nil
}

// RootNodes returns every node whose root flag is set, most-recently-marked
// first.
func (g *Graph) RootNodes() []*Node {
	return g.roots.ToSlice()
}

// NodesByClass returns every live node whose current class is c.
func (g *Graph) NodesByClass(c label.Class) []*Node {
	l, ok := g.nodesByClass[c]
	if !ok {
		return nil
	}

	return l.ToSlice()
}

// EdgesByClass returns every live edge whose current class is c.
func (g *Graph) EdgesByClass(c label.Class) []*Edge {
	l, ok := g.edgesByClass[c]
	if !ok {
		return nil
	}

	return l.ToSlice()
}
