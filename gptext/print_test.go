package gptext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ismaili-ziad/GP2/graph"
	"github.com/ismaili-ziad/GP2/gptext"
	"github.com/ismaili-ziad/GP2/label"
)

func normalizeWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestPrint_EmptyGraph(t *testing.T) {
	g := graph.NewGraph()
	require.Equal(t, "[ | ]", normalizeWS(gptext.Print(g)))
}

func TestPrint_MarkSuffix(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddNode(false, label.Label{Mark: label.MarkRed})
	require.NoError(t, err)

	require.Equal(t, "[ (n0, empty # red) | ]", normalizeWS(gptext.Print(g)))
}

func TestPrint_LabelledEdge(t *testing.T) {
	g := graph.NewGraph()
	n0, _ := g.AddNode(false, label.EmptyLabel())
	n1, _ := g.AddNode(false, label.EmptyLabel())
	lbl := label.Label{List: []label.Atom{label.IntAtom(1), label.StringAtom("foo")}}
	_, err := g.AddEdge(true, lbl, n0, n1)
	require.NoError(t, err)

	want := `[ (n0, empty) (n1, empty) | (e0(B), n0, n1, 1 : "foo") ]`
	require.Equal(t, want, normalizeWS(gptext.Print(g)))
}

func TestPrintVerbose_IncludesRootList(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddNode(true, label.EmptyLabel())
	require.NoError(t, err)

	out := gptext.PrintVerbose(g)
	require.Contains(t, out, "Root Node List:")
	require.Contains(t, out, "n0")
}
