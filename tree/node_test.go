package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode(t *testing.T) {
	n := NewNode("a", 1, 2)
	if n.Name() != "a" || n.Depth() != 0 || n.Index() != 0 {
		t.Logf("node = %v, depth = %d, index = %d", n, n.Depth(), n.Index())
		t.Error("expected fresh node to have depth 0 and index 0")
	}
	if n.HasParent() || n.HasChildren() || n.Tree() != nil {
		t.Error("expected fresh node to be bare")
	}
	attrs := n.Attributes()
	attrs[0] = 99
	assert.Equal(t, []int{1, 2}, n.Attributes(), "attributes must be returned as a copy")
}

func TestAttributesAreCopiedOnCreation(t *testing.T) {
	attrs := []int{1, 2}
	n := NewNode("x", attrs...)
	attrs[0] = 99
	if got := n.Attributes(); got[0] != 1 {
		t.Logf("attributes = %v", got)
		t.Error("expected node attributes to be independent of the caller's slice")
	}
	a := []int{7}
	n.AppendNamedChild("c", a...)
	a[0] = 42
	c, _ := n.Child(0)
	assert.Equal(t, []int{7}, c.Attributes())
	r := []int{3}
	tr := New(WithRootName("r", r...))
	r[0] = 0
	assert.Equal(t, []int{3}, tr.Root().Attributes())
}

func TestAppendChildSetsIndexAndDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treebuilder.tree")
	defer teardown()
	//
	root := NewNode[int]("R")
	root.AppendEmptyChildren("A", "B", "C")
	for i, ch := range root.Children() {
		if ch.Index() != i || ch.Depth() != 1 || ch.Parent() != root {
			t.Logf("child %v: index = %d, depth = %d", ch, ch.Index(), ch.Depth())
			t.Errorf("expected child #%d to be at index %d and depth 1", i, i)
		}
	}
	c, ok := root.Child(1)
	require.True(t, ok)
	assert.Equal(t, "B", c.Name())
	_, ok = root.Child(3)
	assert.False(t, ok)
	assert.False(t, root.HasChildAt(-1))
	assert.True(t, root.HasChildAt(2))
	assert.Equal(t, 3, root.ChildCount())
}

func TestAppendSubtreeUpdatesDepths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treebuilder.tree")
	defer teardown()
	//
	sub := NewNode[int]("X")
	sub.AppendNamedChild("Y")
	y, _ := sub.Child(0)
	y.AppendNamedChild("Z")
	z := y.NodeOrNil(0)
	require.NotNil(t, z)
	assert.Equal(t, 2, z.Depth())
	//
	root := NewNode[int]("R")
	root.AppendNamedChild("A")
	a, _ := root.Child(0)
	a.AppendChild(sub)
	// handles survive the move to root's storage
	assert.Equal(t, 2, sub.Depth())
	assert.Equal(t, 3, y.Depth())
	assert.Equal(t, 4, z.Depth())
	assert.Equal(t, root, z.Root())
	assert.Equal(t, Path{0, 0, 0, 0}, z.Path())
	assert.Equal(t, "R -> A -> X -> Y -> Z", z.StringPathFromRoot())
}

func TestPathEqualsRecursivePath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treebuilder.tree")
	defer teardown()
	//
	root := sampleNodes()
	for _, n := range root.AllNodes() {
		p, rp := n.Path(), n.RecursivePath()
		if !p.Equal(rp) {
			t.Logf("node %v: path = %v, recursive path = %v", n, p, rp)
			t.Errorf("expected iterative and recursive path to match")
		}
		if found := root.NodeOrNil(p...); found != n {
			t.Errorf("expected path %v to lead back to %v, got %v", p, n, found)
		}
	}
}

func TestNodeAtAgreesWithCheckPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treebuilder.tree")
	defer teardown()
	//
	root := sampleNodes()
	for _, path := range []Path{{}, {0}, {0, 1}, {1}, {2}, {0, 2}, {0, 1, 0}, {-1}, {1, 0}} {
		n, err := root.NodeAt(path...)
		result, ok := root.CheckPath(path...)
		if (err == nil) != ok || (root.NodeOrNil(path...) == nil) == ok {
			t.Errorf("path %v: NodeAt, NodeOrNil and CheckPath disagree", path)
		}
		if !ok {
			var terr *TreeError
			require.True(t, errors.As(err, &terr))
			assert.ErrorIs(t, err, ErrPath)
			assert.Equal(t, result, terr.At, "failure position of %v", path)
			assert.Nil(t, n)
		}
	}
}

func TestCheckPathResults(t *testing.T) {
	root := sampleNodes()
	cases := []struct {
		path   Path
		result int
		ok     bool
	}{
		{Path{}, PathEmpty, true},
		{Path{0}, PathFound, true},
		{Path{0, 1}, PathFound, true},
		{Path{5}, 0, false},
		{Path{0, 7}, 1, false},
		{Path{0, 1, 0}, 2, false},
	}
	for _, c := range cases {
		result, ok := root.CheckPath(c.path...)
		if result != c.result || ok != c.ok {
			t.Errorf("CheckPath(%v) = (%d, %v), expected (%d, %v)", c.path, result, ok, c.result, c.ok)
		}
		assert.Equal(t, c.ok, root.IsValidPath(c.path...))
	}
}

func TestStringPath(t *testing.T) {
	root := sampleNodes()
	assert.Equal(t, "R", root.StringPath())
	assert.Equal(t, "R -> A -> A1", root.StringPath(0, 1))
	assert.Equal(t, InvalidPath, root.StringPath(0, 5))
}

func TestAppendPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treebuilder.tree")
	defer teardown()
	//
	root := sampleNodes()
	a := root.NodeOrNil(0)
	b := root.NodeOrNil(1)
	assertInvariantPanic(t, "attached node", func() { b.AppendChild(a) })
	assertInvariantPanic(t, "ancestor", func() { a.NodeOrNil(0).AppendChild(root) })
	tr := New[string]()
	assertInvariantPanic(t, "tree root", func() { root.AppendChild(tr.Root()) })
	assert.NotPanics(t, func() { root.AppendChild(nil) })
	assert.Equal(t, 3, root.ChildCount(), "failed appends must not change the tree")
}

func TestClone(t *testing.T) {
	root := sampleNodes()
	root.NodeOrNil(0).SetAttributes("x")
	a := root.NodeOrNil(0).Clone()
	assert.False(t, a.HasParent())
	assert.Nil(t, a.Tree(), "a cloned subtree is bare until attached")
	assert.Equal(t, 0, a.Depth())
	assert.Equal(t, []string{"A", "A0", "A1"}, names(a.AllNodes()))
	a.SetName("A'")
	a.NodeOrNil(0).SetName("A0'")
	a.AppendNamedChild("new")
	assert.Equal(t, "A", root.NodeOrNil(0).Name())
	assert.Equal(t, "A0", root.NodeOrNil(0, 0).Name())
	assert.Equal(t, 2, root.NodeOrNil(0).ChildCount())
	assert.Equal(t, []string{"x"}, a.Attributes())
}

// ---------------------------------------------------------------------------

func assertInvariantPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected a panic, got none", what)
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvariant) {
			t.Errorf("%s: expected panic with ErrInvariant, got %v", what, r)
		}
	}()
	f()
}

// sampleNodes creates
//
//	R
//	├── A
//	│   ├── A0
//	│   └── A1
//	├── B
//	└── C
func sampleNodes() *Node[string] {
	root := NewNode[string]("R")
	a := NewNode[string]("A")
	a.AppendEmptyChildren("A0", "A1")
	root.AppendChild(a)
	root.AppendEmptyChildren("B", "C")
	return root
}

func names[T any](nodes []*Node[T]) []string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.Name()
	}
	return s
}
