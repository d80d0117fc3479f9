package tree

/*
The cursor is a path from the root. Every operation changing it validates the
new path first and commits only valid paths. As nodes are never removed, a
valid cursor stays valid.
*/

// CursorPath returns a copy of the cursor path. The empty path means "at root".
func (t *Tree[T]) CursorPath() Path {
	return t.cursor.Clone()
}

// CursorNode returns the node the cursor points to.
func (t *Tree[T]) CursorNode() *Node[T] {
	node, err := t.NodeAt(t.cursor...)
	assertThat(err == nil, "cursor %v does not denote a node", t.cursor)
	return node
}

// CursorIsAtRoot is true if the cursor path is empty.
func (t *Tree[T]) CursorIsAtRoot() bool {
	return len(t.cursor) == 0
}

// CursorMoveToRoot resets the cursor.
// It returns the tree to allow for chaining.
func (t *Tree[T]) CursorMoveToRoot() *Tree[T] {
	t.cursor = Path{}
	return t
}

// CursorSet moves the cursor to path from the root. If path does not exist,
// the cursor stays where it is.
// It returns the tree to allow for chaining.
func (t *Tree[T]) CursorSet(path ...int) *Tree[T] {
	t.CursorSetWithResult(path...)
	return t
}

// CursorSetWithResult does the same as CursorSet and returns the result of
// checking path (see CheckPath).
func (t *Tree[T]) CursorSetWithResult(path ...int) (result int, ok bool) {
	result, ok = t.CheckPath(path...)
	switch {
	case !ok:
		tracer().Debugf("cursor not moved, path %v fails at position %d", Path(path), result)
	case result == PathEmpty:
		t.cursor = Path{}
	default:
		t.cursor = Path(path).Clone()
	}
	return result, ok
}

// CursorSetRelative moves the cursor along path, starting from the current
// cursor node. If path does not exist, the cursor stays where it is.
// It returns the tree to allow for chaining.
func (t *Tree[T]) CursorSetRelative(path ...int) *Tree[T] {
	if t.CursorNode().IsValidPath(path...) {
		t.cursor = t.cursor.Concat(path...)
	}
	return t
}

// CursorMoveUp moves the cursor to the parent of the cursor node. If the cursor
// is at the root, it returns false and nothing happens.
func (t *Tree[T]) CursorMoveUp() bool {
	if len(t.cursor) == 0 {
		return false
	}
	t.cursor = t.cursor.DropLast(1)
	return true
}

// CursorMoveUpN moves the cursor up n times, stopping at the root.
// n must not be negative.
// It returns the tree to allow for chaining.
func (t *Tree[T]) CursorMoveUpN(n int) *Tree[T] {
	assertThat(n >= 0, "cannot move cursor up %d times", n)
	t.cursor = t.cursor.DropLast(n)
	return t
}

// CursorCheckMoveUp is true if the cursor can be moved up n times without
// hitting the root. n must not be negative.
func (t *Tree[T]) CursorCheckMoveUp(n int) bool {
	assertThat(n >= 0, "cannot move cursor up %d times", n)
	return n <= len(t.cursor)
}

// --- Appending at the cursor -----------------------------------------------

// CursorAppendNode appends node to the cursor node.
// It returns the tree to allow for chaining.
func (t *Tree[T]) CursorAppendNode(node *Node[T]) *Tree[T] {
	t.CursorNode().AppendChild(node)
	return t
}

// CursorAppendNamed appends a new node with name and attributes to the cursor
// node.
// It returns the tree to allow for chaining.
func (t *Tree[T]) CursorAppendNamed(name string, attributes ...T) *Tree[T] {
	t.CursorNode().AppendNamedChild(name, attributes...)
	return t
}

// CursorAppendNodes appends nodes to the cursor node, in order.
// It returns the tree to allow for chaining.
func (t *Tree[T]) CursorAppendNodes(nodes ...*Node[T]) *Tree[T] {
	t.CursorNode().AppendChildren(nodes...)
	return t
}

// CursorAppendEmptyNodes appends a new node without attributes to the cursor
// node, for each name.
// It returns the tree to allow for chaining.
func (t *Tree[T]) CursorAppendEmptyNodes(names ...string) *Tree[T] {
	t.CursorNode().AppendEmptyChildren(names...)
	return t
}
