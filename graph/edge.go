package graph

import "github.com/ismaili-ziad/GP2/label"

// Edge is a host-graph edge: a stable index, a bidirectional flag, an owned
// label and cached class, and weak references to its source and target
// nodes. An edge never owns the nodes it points at.
type Edge struct {
	index         int
	bidirectional bool
	label         label.Label
	class         label.Class
	source        *Node
	target        *Node
}

func (e *Edge) SetIndex(i int) { e.index = i }
func (e *Edge) Index() int     { return e.index }

// Bidirectional reports whether e is a bidirectional edge.
func (e *Edge) Bidirectional() bool { return e.bidirectional }

// Label returns e's label.
func (e *Edge) Label() label.Label { return e.label }

// Class returns e's cached label class.
func (e *Edge) Class() label.Class { return e.class }
