package graph

import (
	"github.com/ismaili-ziad/GP2/label"
	"github.com/ismaili-ziad/GP2/slotset"
)

// incidenceRef is the element type stored in a node's incidence containers.
// It carries its own slot index (its position within that particular
// incidence array), which is a different number from the referenced edge's
// own index in the graph's edge container.
type incidenceRef struct {
	idx  int
	edge *Edge
}

func (r *incidenceRef) SetIndex(i int) { r.idx = i }
func (r *incidenceRef) Index() int     { return r.idx }

// Node is a host-graph node: a stable index, a root flag, an owned label
// and cached class, and two owned incidence containers for outgoing and
// incoming edges, whose occupied counts are its out- and in-degrees. All cross-references it holds (its incident
// edges) are weak: the node does not own the edges themselves, only its
// incidence-slot bookkeeping.
type Node struct {
	index int
	root  bool
	label label.Label
	class label.Class

	outInc *slotset.Set[*incidenceRef]
	inInc  *slotset.Set[*incidenceRef]
}

func newNode(root bool, lbl label.Label, class label.Class) *Node {
	return &Node{
		root:   root,
		label:  lbl,
		class:  class,
		outInc: slotset.New[*incidenceRef](),
		inInc:  slotset.New[*incidenceRef](),
	}
}

func (n *Node) SetIndex(i int) { n.index = i }
func (n *Node) Index() int     { return n.index }

// Root reports whether n's root flag is set.
func (n *Node) Root() bool { return n.root }

// Label returns n's label.
func (n *Node) Label() label.Label { return n.label }

// Class returns n's cached label class.
func (n *Node) Class() label.Class { return n.class }

// OutDegree returns the number of occupied slots in n's out-incidence.
func (n *Node) OutDegree() int { return n.outInc.Len() }

// InDegree returns the number of occupied slots in n's in-incidence.
func (n *Node) InDegree() int { return n.inInc.Len() }
