package graph

import (
	"errors"

	"github.com/ismaili-ziad/GP2/label"
)

// Sentinel errors for the graph store. Error messages follow the
// "pkg: lowercase sentence" convention, checked with errors.Is.
var (
	// ErrOutOfRange indicates an accessor addressed an index at or beyond
	// a container's high-water mark.
	ErrOutOfRange = errors.New("graph: index out of range")

	// ErrEmptySlot indicates an accessor addressed a slot that currently
	// holds no entity.
	ErrEmptySlot = errors.New("graph: slot is empty")

	// ErrDanglingIncidence is returned by RemoveNode when the node still
	// has incident edges.
	ErrDanglingIncidence = errors.New("graph: node has dangling incidence")

	// ErrLabelTooLong re-exports label.ErrLabelTooLong so callers can
	// check it without importing the label package directly.
	ErrLabelTooLong = label.ErrLabelTooLong

	// ErrMarkNotHostGraph is returned when AddNode, AddEdge, RelabelNode
	// or RelabelEdge is asked to install MarkAny or MarkAnyPlus. A host
	// graph is always a concrete instance, never a pattern, so those
	// marks have no place on it.
	ErrMarkNotHostGraph = errors.New("graph: any/any+ mark not permitted on a host graph")

	// ErrMaxNodesExceeded is returned by AddNode when the configured node
	// ceiling would be exceeded.
	ErrMaxNodesExceeded = errors.New("graph: maximum node count exceeded")

	// ErrMaxEdgesExceeded is returned by AddEdge when the configured edge
	// ceiling would be exceeded.
	ErrMaxEdgesExceeded = errors.New("graph: maximum edge count exceeded")

	// ErrMaxIncidenceExceeded is returned by AddEdge when installing the
	// edge would push a node's incidence count past the configured
	// ceiling.
	ErrMaxIncidenceExceeded = errors.New("graph: maximum incident-edge count exceeded")

	// ErrNodeNotLive is returned by AddEdge when source or target is not
	// a node currently held by this graph's node container.
	ErrNodeNotLive = errors.New("graph: source or target is not a live node of this graph")
)
