package snapshot

import "github.com/ismaili-ziad/GP2/graph"

// Stack is a LIFO sequence of graph snapshots belonging to one executor.
// The zero value is an empty, ready-to-use stack.
type Stack struct {
	frames []*graph.Graph
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push deep-copies g (graph.Graph.Copy, grounded on the original's
// copyGraph three-pass algorithm) and records the copy on top of the stack.
// The caller keeps working on g; the copy is only visited again by a
// matching Restore.
func (s *Stack) Push(g *graph.Graph) {
	s.frames = append(s.frames, g.Copy())
}

// Restore discards current (the graph the caller had been mutating since
// the matching Push) and pops the top of the stack, returning it as the
// new working graph. It returns ErrEmptyStack if the stack has nothing to
// pop.
func (s *Stack) Restore(current *graph.Graph) (*graph.Graph, error) {
	n := len(s.frames)
	if n == 0 {
		return nil, ErrEmptyStack
	}

	prior := s.frames[n-1]
	s.frames = s.frames[:n-1]

	return prior, nil
}

// Len returns the number of snapshots currently on the stack.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Close releases every remaining snapshot. The stack is empty and reusable
// afterward.
func (s *Stack) Close() {
	s.frames = nil
}
