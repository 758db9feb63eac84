package label

// Mark is the colour/style tag carried by a label, orthogonal to its atom
// list.
type Mark int

const (
	MarkNone Mark = iota
	MarkRed
	MarkGreen
	MarkBlue
	MarkGrey
	MarkDashed
	MarkAny
	// MarkAnyPlus is permitted only in rule left-hand sides in the full
	// language. A host graph is always a concrete instance, never a
	// pattern, so graph.AddNode/AddEdge/relabel reject both MarkAny and
	// MarkAnyPlus on host-graph entities; the constant exists for textual
	// round-tripping and forward API compatibility with the matcher.
	MarkAnyPlus
)

// String returns the mark keyword, or "" for MarkNone (callers print the
// "# <mark>" suffix only when non-none).
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return ""
	case MarkRed:
		return "red"
	case MarkGreen:
		return "green"
	case MarkBlue:
		return "blue"
	case MarkGrey:
		return "grey"
	case MarkDashed:
		return "dashed"
	case MarkAny:
		return "any"
	case MarkAnyPlus:
		return "any+"
	default:
		return "unknown"
	}
}
