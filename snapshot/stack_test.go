package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ismaili-ziad/GP2/graph"
	"github.com/ismaili-ziad/GP2/label"
	"github.com/ismaili-ziad/GP2/snapshot"
)

func buildChain(t *testing.T, n int) (*graph.Graph, []*graph.Node) {
	g := graph.NewGraph()
	nodes := make([]*graph.Node, n)
	var err error
	for i := range nodes {
		nodes[i], err = g.AddNode(i == 0, label.EmptyLabel())
		require.NoError(t, err)
	}
	for i := 0; i+1 < n; i++ {
		_, err = g.AddEdge(false, label.EmptyLabel(), nodes[i], nodes[i+1])
		require.NoError(t, err)
	}

	return g, nodes
}

// TestStack_RestoreEmpty verifies Restore on an empty stack signals
// ErrEmptyStack.
func TestStack_RestoreEmpty(t *testing.T) {
	s := snapshot.NewStack()
	g := graph.NewGraph()

	_, err := s.Restore(g)
	require.ErrorIs(t, err, snapshot.ErrEmptyStack)
}

// TestStack_PushRestoreObservationalEquality exercises property 4: copy
// then restore yields a graph observationally equal to the state at push
// time, under every part of the query surface.
func TestStack_PushRestoreObservationalEquality(t *testing.T) {
	g, nodes := buildChain(t, 5)
	s := snapshot.NewStack()
	s.Push(g)

	require.NoError(t, g.RemoveEdge(3))
	require.NoError(t, g.RemoveNode(nodes[4].Index()))

	prior, err := s.Restore(g)
	require.NoError(t, err)

	require.Equal(t, 5, prior.NumNodes())
	require.Equal(t, 4, prior.NumEdges())
	for i, n := range nodes {
		got, gerr := prior.Node(n.Index())
		require.NoError(t, gerr)
		require.Equal(t, n.Root(), got.Root())
		require.Equal(t, n.Class(), got.Class())
		if i > 0 {
			require.Equal(t, 1, got.InDegree())
		}
	}

	ok, verr := graph.Validate(prior)
	require.True(t, ok, "%v", verr)
}

// TestStack_CopyIsIndependent exercises property 5: mutating the copy must
// not affect the original, and vice versa.
func TestStack_CopyIsIndependent(t *testing.T) {
	g, nodes := buildChain(t, 3)
	snap := g.Copy()

	require.NoError(t, g.RemoveEdge(1))
	require.Equal(t, 1, g.NumEdges())
	require.Equal(t, 2, snap.NumEdges())

	snapNode, err := snap.Node(nodes[0].Index())
	require.NoError(t, err)
	require.NoError(t, snap.RelabelNode(snapNode, label.Label{List: []label.Atom{label.IntAtom(1)}}, true, false))

	orig, err := g.Node(nodes[0].Index())
	require.NoError(t, err)
	require.Equal(t, label.ClassEmpty, orig.Class())
}

// TestStack_NestedSnapshots exercises scenario S6: two successive pushes
// with mutations interleaved, restored in reverse order.
func TestStack_NestedSnapshots(t *testing.T) {
	g, _ := buildChain(t, 5)
	s := snapshot.NewStack()

	s.Push(g) // frame A: 5 nodes, 4 edges
	require.NoError(t, g.RemoveEdge(3))

	s.Push(g) // frame B: 5 nodes, 3 edges
	require.NoError(t, g.RemoveEdge(2))

	require.Equal(t, 2, s.Len())

	afterB, err := s.Restore(g)
	require.NoError(t, err)
	require.Equal(t, 3, afterB.NumEdges())

	afterA, err := s.Restore(afterB)
	require.NoError(t, err)
	require.Equal(t, 4, afterA.NumEdges())

	require.Equal(t, 0, s.Len())
}
