package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The TreeBuilder Authors

*/

import (
	"fmt"
	"slices"
)

// Node is the base type our tree is built of. Nodes carry a name and a list of
// attributes of type T.
//
// Nodes must be created with NewNode (or by the append operations). A Node is
// a handle into the storage of its tree; it stays valid when the node is
// appended somewhere else.
type Node[T any] struct {
	arena *arena[T]
	id    nodeID
}

// NewNode creates a new bare node with a given name and attributes. The node
// neither has a parent nor belongs to a tree, until it is appended to another
// node or made the root of a tree.
func NewNode[T any](name string, attributes ...T) *Node[T] {
	return newArena[T](nil).alloc(name, attributes)
}

func (node *Node[T]) rec() *record[T] {
	return &node.arena.records[node.id]
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node %q #ch=%d %v)", node.Name(), node.ChildCount(), node.rec().attrs)
}

// --- Identity --------------------------------------------------------------

// Name returns the name of the node.
func (node *Node[T]) Name() string {
	return node.rec().name
}

// SetName changes the name of the node.
// It returns the node to allow for chaining.
func (node *Node[T]) SetName(name string) *Node[T] {
	node.rec().name = name
	return node
}

// Attributes returns a copy of the attributes of the node.
func (node *Node[T]) Attributes() []T {
	return slices.Clone(node.rec().attrs)
}

// SetAttributes replaces the attributes of the node.
// It returns the node to allow for chaining.
func (node *Node[T]) SetAttributes(attributes ...T) *Node[T] {
	node.rec().attrs = slices.Clone(attributes)
	return node
}

// Depth is the distance to the root node. Roots and bare nodes have depth 0.
func (node *Node[T]) Depth() int {
	return node.rec().depth
}

// Index is the position of the node among its siblings. It is assigned once, at
// the time the node is appended to its parent.
func (node *Node[T]) Index() int {
	return node.rec().index
}

// Tree returns the tree this node belongs to, or nil for bare nodes.
func (node *Node[T]) Tree() *Tree[T] {
	return node.arena.tree
}

// --- Structure -------------------------------------------------------------

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	p := node.rec().parent
	if p == noNode {
		return nil
	}
	return node.arena.records[p].node
}

// HasParent is true for every node but a root or a bare node.
func (node *Node[T]) HasParent() bool {
	return node.rec().parent != noNode
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return len(node.rec().children)
}

// HasChildren is true if node is not a leaf.
func (node *Node[T]) HasChildren() bool {
	return node.ChildCount() > 0
}

// HasChildAt is true if node has a child at position i.
func (node *Node[T]) HasChildAt(i int) bool {
	return i >= 0 && i < node.ChildCount()
}

// Child returns the child at position i, if present.
func (node *Node[T]) Child(i int) (*Node[T], bool) {
	if !node.HasChildAt(i) {
		return nil, false
	}
	return node.arena.records[node.rec().children[i]].node, true
}

// Children returns a slice with all children of a node, in append order.
func (node *Node[T]) Children() []*Node[T] {
	ids := node.rec().children
	children := make([]*Node[T], len(ids))
	for i, id := range ids {
		children[i] = node.arena.records[id].node
	}
	return children
}

// Root walks up the parent links and returns the topmost node.
func (node *Node[T]) Root() *Node[T] {
	return node.arena.records[node.arena.top(node.id)].node
}

// isTreeRoot is true if node is the root of some tree.
func (node *Node[T]) isTreeRoot() bool {
	t := node.arena.tree
	return t != nil && t.root == node.id
}

// --- Appending -------------------------------------------------------------

// AppendChild inserts a node as the last child of this node. The child is
// assigned its parent, depth and sibling index. If child has children of its
// own, they come along.
// It returns the parent node to allow for chaining.
//
// child must neither have a parent nor be the root of a tree, and it must not
// be an ancestor of node. Violations cause a panic.
func (node *Node[T]) AppendChild(child *Node[T]) *Node[T] {
	if child == nil {
		return node
	}
	if p := child.Parent(); p != nil {
		assertThat(false, "node %q already has parent %q", child.Name(), p.Name())
	}
	assertThat(!child.isTreeRoot(), "node %q is the root of a tree", child.Name())
	if child.arena != node.arena {
		node.arena.adopt(child)
	} else {
		assertThat(node.arena.top(node.id) != child.id, "appending %q to %q would create a cycle",
			child.Name(), node.Name())
	}
	node.arena.link(node.id, child.id)
	tracer().Debugf("appended %q to %q at index %d", child.Name(), node.Name(), child.Index())
	return node
}

// AppendNamedChild creates a new node from name and attributes and appends it.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AppendNamedChild(name string, attributes ...T) *Node[T] {
	return node.AppendChild(node.arena.alloc(name, attributes))
}

// AppendEmptyChildren appends a new node without attributes for each name, in
// the given order.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AppendEmptyChildren(names ...string) *Node[T] {
	for _, name := range names {
		node.AppendNamedChild(name)
	}
	return node
}

// AppendChildren appends nodes, in the given order.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AppendChildren(children ...*Node[T]) *Node[T] {
	for _, ch := range children {
		node.AppendChild(ch)
	}
	return node
}

// --- Paths -----------------------------------------------------------------

// Path returns the sequence of sibling-indices leading from the root to this
// node. The path of a root is empty.
func (node *Node[T]) Path() Path {
	path := Path{}
	for id := node.id; node.arena.records[id].parent != noNode; id = node.arena.records[id].parent {
		path = append(path, node.arena.records[id].index)
	}
	slices.Reverse(path)
	return path
}

// RecursivePath computes the same path as Path, by recursion over parents.
func (node *Node[T]) RecursivePath() Path {
	if p := node.Parent(); p != nil {
		return append(p.RecursivePath(), node.Index())
	}
	return Path{}
}

// NodeAt returns the node reached by descending path from this node. The
// empty path returns node itself. If path does not exist, a *TreeError is
// returned, carrying the failing position within path.
func (node *Node[T]) NodeAt(path ...int) (*Node[T], error) {
	id, at := node.arena.walk(node.id, path)
	if at >= 0 {
		return nil, pathError(path, at)
	}
	return node.arena.records[id].node, nil
}

// NodeOrNil returns the node reached by descending path from this node, or
// nil if path does not exist.
func (node *Node[T]) NodeOrNil(path ...int) *Node[T] {
	id, at := node.arena.walk(node.id, path)
	if at >= 0 {
		return nil
	}
	return node.arena.records[id].node
}

// CheckPath tests if path can be traversed from this node. result is
//
//   - PathEmpty (-1) if path is empty,
//   - PathFound (0) if path resolves,
//   - the position within path at which traversal failed.
//
// ok is false exactly in the last case. It tells a failure at position 0
// apart from PathFound.
func (node *Node[T]) CheckPath(path ...int) (result int, ok bool) {
	return node.arena.check(node.id, path)
}

// IsValidPath is true if path is empty or resolves from this node.
func (node *Node[T]) IsValidPath(path ...int) bool {
	_, ok := node.CheckPath(path...)
	return ok
}

// StringPath renders the names along path, starting with this node's name,
// as "name0 -> name1 -> …". It returns "Invalid Path" if path does not exist.
func (node *Node[T]) StringPath(path ...int) string {
	if !node.IsValidPath(path...) {
		return InvalidPath
	}
	s := node.Name()
	n := node
	for _, index := range path {
		n, _ = n.Child(index)
		s += " -> " + n.Name()
	}
	return s
}

// StringPathFromRoot renders the path from the root of node down to node.
func (node *Node[T]) StringPathFromRoot() string {
	return node.Root().StringPath(node.Path()...)
}

// InvalidPath is what StringPath renders for paths which do not exist.
const InvalidPath = "Invalid Path"

// --- Copying ---------------------------------------------------------------

// Clone returns a deep copy of the subtree at node, as a new bare node. Names
// and attribute lists are copied, children are re-appended in order, so depths
// and sibling indices of the copy start fresh. The copy shares nothing with
// node. The copy is bare: its Tree is nil until it is appended to a node of a
// tree or made the root of one.
func (node *Node[T]) Clone() *Node[T] {
	a := newArena[T](nil)
	id := a.copyOf(node.arena, node.id)
	return a.records[id].node
}
