package gptext

import (
	"fmt"
	"strings"

	"github.com/ismaili-ziad/GP2/graph"
	"github.com/ismaili-ziad/GP2/label"
)

const (
	nodesPerLine = 5
	edgesPerLine = 3
)

// Print renders g in the graph textual form:
//
//	[ (n<idx>[(R)], <label> [# <mark>]) …
//	| (e<idx>[(B)], n<src>, n<tgt>, <label> [# <mark>]) … ]
//
// wrapping at five nodes and three edges per line, matching the original
// runtime's printGraph. The empty graph serialises as "[ | ]".
func Print(g *graph.Graph) string {
	var sb strings.Builder
	sb.WriteString("[ ")
	writeWrapped(&sb, g.Nodes(), nodesPerLine, func(n *graph.Node) string { return printNode(n) })
	sb.WriteString("| ")
	writeWrapped(&sb, g.Edges(), edgesPerLine, func(e *graph.Edge) string { return printEdge(g, e) })
	sb.WriteString("]")

	return sb.String()
}

func writeWrapped[T any](sb *strings.Builder, items []T, perLine int, render func(T) string) {
	for i, item := range items {
		sb.WriteString(render(item))
		sb.WriteString(" ")
		if (i+1)%perLine == 0 {
			sb.WriteString("\n")
		}
	}
}

func printNode(n *graph.Node) string {
	s := fmt.Sprintf("(n%d", n.Index())
	if n.Root() {
		s += "(R)"
	}
	s += ", " + labelText(n.Label()) + ")"

	return s
}

func printEdge(g *graph.Graph, e *graph.Edge) string {
	s := fmt.Sprintf("(e%d", e.Index())
	if e.Bidirectional() {
		s += "(B)"
	}
	s += fmt.Sprintf(", n%d, n%d, %s)", g.Source(e).Index(), g.Target(e).Index(), labelText(e.Label()))

	return s
}

func labelText(l label.Label) string {
	s := l.String()
	if l.Mark != label.MarkNone {
		s += " # " + l.Mark.String()
	}

	return s
}

// PrintVerbose renders g as a human-readable dump: each node's index, root
// flag, class, label, in/out-degrees; each edge's index, bidirectional
// flag, class, label, source and target indices; then the root-node list a
// second time under its own heading, matching the original's
// printVerboseGraph.
func PrintVerbose(g *graph.Graph) string {
	var sb strings.Builder

	sb.WriteString("Nodes:\n")
	for _, n := range g.Nodes() {
		fmt.Fprintf(&sb, "  n%d: root=%v class=%s label=%s in=%d out=%d\n",
			n.Index(), n.Root(), n.Class(), labelText(n.Label()), n.InDegree(), n.OutDegree())
	}

	sb.WriteString("Edges:\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "  e%d: bidirectional=%v class=%s label=%s source=n%d target=n%d\n",
			e.Index(), e.Bidirectional(), e.Class(), labelText(e.Label()), g.Source(e).Index(), g.Target(e).Index())
	}

	sb.WriteString("Root Node List:\n")
	for _, n := range g.RootNodes() {
		fmt.Fprintf(&sb, "  n%d\n", n.Index())
	}

	return sb.String()
}
