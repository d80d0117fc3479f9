package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCursorSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treebuilder.tree")
	defer teardown()
	//
	tr := New(WithRoot(sampleNodes()))
	tr.CursorSet(0, 1)
	if tr.CursorNode().Name() != "A1" {
		t.Logf("cursor = %v", tr.CursorPath())
		t.Errorf("expected cursor at A1, is at %v", tr.CursorNode())
	}
	result, ok := tr.CursorSetWithResult(0, 4)
	assert.Equal(t, 1, result)
	assert.False(t, ok)
	assert.Equal(t, Path{0, 1}, tr.CursorPath(), "cursor must not move on invalid paths")
	result, ok = tr.CursorSetWithResult()
	assert.Equal(t, PathEmpty, result)
	assert.True(t, ok)
	assert.True(t, tr.CursorIsAtRoot())
	assert.Equal(t, tr.Root(), tr.CursorNode())
}

func TestCursorPathIsACopy(t *testing.T) {
	tr := New(WithRoot(sampleNodes()))
	path := Path{0, 0}
	tr.CursorSet(path...)
	path[1] = 1
	p := tr.CursorPath()
	p[0] = 2
	assert.Equal(t, "A0", tr.CursorNode().Name())
}

func TestCursorSetRelative(t *testing.T) {
	tr := New(WithRoot(sampleNodes()))
	tr.CursorSet(0).CursorSetRelative(1)
	assert.Equal(t, Path{0, 1}, tr.CursorPath())
	tr.CursorSetRelative(0)
	assert.Equal(t, Path{0, 1}, tr.CursorPath(), "A1 has no children")
}

func TestCursorMoveUp(t *testing.T) {
	tr := New(WithRoot(sampleNodes()))
	tr.CursorSet(0, 1)
	assert.True(t, tr.CursorCheckMoveUp(0))
	assert.True(t, tr.CursorCheckMoveUp(2))
	assert.False(t, tr.CursorCheckMoveUp(3))
	assert.True(t, tr.CursorMoveUp())
	assert.Equal(t, "A", tr.CursorNode().Name())
	assert.True(t, tr.CursorMoveUp())
	assert.False(t, tr.CursorMoveUp())
	assert.True(t, tr.CursorIsAtRoot())
	tr.CursorSet(0, 0).CursorMoveUpN(5)
	assert.True(t, tr.CursorIsAtRoot())
	tr.CursorSet(0, 0).CursorMoveUpN(1)
	assert.Equal(t, Path{0}, tr.CursorPath())
	assert.Panics(t, func() { tr.CursorMoveUpN(-1) })
	assert.Panics(t, func() { tr.CursorCheckMoveUp(-1) })
}

func TestCursorAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treebuilder.tree")
	defer teardown()
	//
	tr := New(WithRoot(sampleNodes()))
	tr.CursorSet(2).
		CursorAppendNamed("C0").
		CursorAppendNode(NewNode[string]("C1")).
		CursorAppendNodes(NewNode[string]("C2"), NewNode[string]("C3")).
		CursorAppendEmptyNodes("C4", "C5")
	c := tr.CursorNode()
	assert.Equal(t, []string{"C0", "C1", "C2", "C3", "C4", "C5"}, names(c.Children()))
	assert.Equal(t, "R -> C -> C5", tr.StringPath(2, 5))
	tr.CursorMoveToRoot().CursorAppendEmptyNodes("D")
	assert.Equal(t, 4, tr.Root().ChildCount())
}
