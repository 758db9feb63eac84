package label_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ismaili-ziad/GP2/label"
)

func TestClassOf_Empty(t *testing.T) {
	c, err := label.ClassOf(label.EmptyLabel())
	require.NoError(t, err)
	require.Equal(t, label.ClassEmpty, c)
}

func TestClassOf_Singleton(t *testing.T) {
	cases := []struct {
		name  string
		atom  label.Atom
		class label.Class
	}{
		{"int", label.IntAtom(42), label.ClassInt},
		{"negation", label.Atom{Kind: label.AtomNeg, Left: &negOperand}, label.ClassInt},
		{"string", label.StringAtom("foo"), label.ClassString},
		{"char", label.CharAtom('x'), label.ClassString},
		{"atomic var", label.VarAtom("x"), label.ClassAtomicVar},
		{"indeg", label.Atom{Kind: label.AtomIndeg, NodeID: "n0"}, label.ClassListVar},
		{"outdeg", label.Atom{Kind: label.AtomOutdeg, NodeID: "n0"}, label.ClassListVar},
		{"llength", label.Atom{Kind: label.AtomLlength}, label.ClassListVar},
		{"slength", label.Atom{Kind: label.AtomSlength, Left: &negOperand}, label.ClassListVar},
		{"add", label.Atom{Kind: label.AtomAdd, Left: &negOperand, Right: &negOperand}, label.ClassListVar},
		{"sub", label.Atom{Kind: label.AtomSub, Left: &negOperand, Right: &negOperand}, label.ClassListVar},
		{"mul", label.Atom{Kind: label.AtomMul, Left: &negOperand, Right: &negOperand}, label.ClassListVar},
		{"div", label.Atom{Kind: label.AtomDiv, Left: &negOperand, Right: &negOperand}, label.ClassListVar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := label.Label{List: []label.Atom{tc.atom}}
			c, err := label.ClassOf(l)
			require.NoError(t, err)
			require.Equal(t, tc.class, c)
		})
	}
}

var negOperand = label.IntAtom(1)

func TestClassOf_ListLengths(t *testing.T) {
	for n, want := range map[int]label.Class{
		2: label.ClassList2,
		3: label.ClassList3,
		4: label.ClassList4,
		5: label.ClassList5,
	} {
		atoms := make([]label.Atom, n)
		for i := range atoms {
			atoms[i] = label.IntAtom(i)
		}
		c, err := label.ClassOf(label.Label{List: atoms})
		require.NoError(t, err)
		require.Equal(t, want, c)
	}
}

func TestClassOf_TooLong(t *testing.T) {
	atoms := make([]label.Atom, 6)
	for i := range atoms {
		atoms[i] = label.IntAtom(i)
	}
	_, err := label.ClassOf(label.Label{List: atoms})
	require.True(t, errors.Is(err, label.ErrLabelTooLong))
}

func TestClassOf_ListVarOverridesLength(t *testing.T) {
	l := label.Label{List: []label.Atom{label.IntAtom(1), label.ListVarAtom("xs")}}
	c, err := label.ClassOf(l)
	require.NoError(t, err)
	require.Equal(t, label.ClassListVar, c)
}

func TestLabel_CloneIsIndependent(t *testing.T) {
	orig := label.Label{Mark: label.MarkRed, List: []label.Atom{label.IntAtom(1), label.StringAtom("a")}}
	clone := orig.Clone()

	clone.List[0] = label.IntAtom(99)
	require.Equal(t, 1, orig.List[0].Int)
	require.Equal(t, 99, clone.List[0].Int)
}

func TestLabel_IsGround(t *testing.T) {
	require.True(t, label.EmptyLabel().IsGround())

	ground := label.Label{List: []label.Atom{label.IntAtom(1), label.StringAtom("a")}}
	require.True(t, ground.IsGround())

	withVar := label.Label{List: []label.Atom{label.VarAtom("x")}}
	require.False(t, withVar.IsGround())

	withDeg := label.Label{List: []label.Atom{{Kind: label.AtomIndeg, NodeID: "n0"}}}
	require.False(t, withDeg.IsGround())
}

func TestLabel_String(t *testing.T) {
	require.Equal(t, "empty", label.EmptyLabel().String())

	l := label.Label{List: []label.Atom{label.IntAtom(1), label.StringAtom("foo"), label.VarAtom("x")}}
	require.Equal(t, `1 : "foo" : x`, l.String())
}

func TestAtom_StringBinaryOps(t *testing.T) {
	a := label.Atom{Kind: label.AtomAdd, Left: &label.Atom{Kind: label.AtomInt, Int: 1}, Right: &label.Atom{Kind: label.AtomInt, Int: 2}}
	require.Equal(t, "(1 + 2)", a.String())
}
