package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The TreeBuilder Authors

*/

// DefaultRootName is the name of the root of a tree created without options.
const DefaultRootName = "Default Root"

// Tree owns a hierarchy of nodes with a single root. Besides the nodes, a tree
// has a name and a cursor (see CursorSet and friends).
//
// The root node may be changed in place (name, attributes, children), but it
// cannot be replaced by clients. Use WithRoot to create a tree around an
// existing node.
type Tree[T any] struct {
	name   string
	arena  *arena[T]
	root   nodeID
	cursor Path // path from root; empty = at root
}

// Option is a type to help initializing trees at creation time.
type Option[T any] func(*Tree[T])

// WithName sets the name of a new tree.
func WithName[T any](name string) Option[T] {
	return func(t *Tree[T]) {
		t.name = name
	}
}

// WithRoot makes node the root of a new tree. node must not have a parent or
// be the root of another tree; it is moved, together with its subtree, into
// the new tree.
func WithRoot[T any](node *Node[T]) Option[T] {
	return func(t *Tree[T]) {
		t.setRoot(node)
	}
}

// WithRootName creates a new tree with a fresh root of the given name and
// attributes.
func WithRootName[T any](name string, attributes ...T) Option[T] {
	return func(t *Tree[T]) {
		t.setRoot(NewNode(name, attributes...))
	}
}

// New creates a tree. Without options, the tree is unnamed and has a single
// root node named "Default Root".
//
//	t := tree.New(tree.WithName[int]("numbers"), tree.WithRootName[int]("0", 0))
func New[T any](opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{cursor: Path{}}
	t.setRoot(NewNode[T](DefaultRootName))
	for _, option := range opts {
		option(t)
	}
	return t
}

// setRoot is the only way to replace the root of a tree. The tree gets a
// fresh arena, the new root is moved into it and the cursor is reset. Nodes of
// the previous hierarchy stay intact but no longer belong to t.
func (t *Tree[T]) setRoot(node *Node[T]) {
	assertThat(node != nil, "root of tree must not be nil")
	if t.arena != nil && node.arena == t.arena && node.id == t.root {
		return
	}
	assertThat(!node.HasParent(), "node %q cannot be a root, it has a parent", node.Name())
	if other := node.arena.tree; other != nil && other != t {
		assertThat(!node.isTreeRoot(), "node %q already is the root of another tree", node.Name())
	}
	if t.arena != nil {
		t.arena.tree = nil // previous nodes are now bare
	}
	t.arena = newArena(t)
	t.arena.adopt(node)
	t.root = node.id
	t.arena.setDepth(t.root, 0)
	t.arena.records[t.root].index = 0
	t.cursor = Path{}
	tracer().Debugf("tree %q has new root %q", t.name, node.Name())
}

// Root returns the root node of t.
func (t *Tree[T]) Root() *Node[T] {
	return t.arena.records[t.root].node
}

// Name returns the name of the tree.
func (t *Tree[T]) Name() string {
	return t.name
}

// SetName sets the name of the tree.
// It returns the tree to allow for chaining.
func (t *Tree[T]) SetName(name string) *Tree[T] {
	t.name = name
	return t
}

// SetRootName renames the root node.
// It returns the tree to allow for chaining.
func (t *Tree[T]) SetRootName(name string) *Tree[T] {
	t.Root().SetName(name)
	return t
}

// SetRootAttributes replaces the attributes of the root node.
// It returns the tree to allow for chaining.
func (t *Tree[T]) SetRootAttributes(attributes ...T) *Tree[T] {
	t.Root().SetAttributes(attributes...)
	return t
}

// Len returns the number of nodes in t.
func (t *Tree[T]) Len() int {
	n := 0
	t.Root().Walk(func(*Node[T]) bool {
		n++
		return true
	})
	return n
}

// --- Paths from root -------------------------------------------------------

// CheckPath tests if path can be traversed from the root.
// See Node.CheckPath for the meaning of the results.
func (t *Tree[T]) CheckPath(path ...int) (result int, ok bool) {
	return t.Root().CheckPath(path...)
}

// IsValidPath is true if path is empty or resolves from the root.
func (t *Tree[T]) IsValidPath(path ...int) bool {
	return t.Root().IsValidPath(path...)
}

// NodeOrNil returns the node at path from the root, or nil.
func (t *Tree[T]) NodeOrNil(path ...int) *Node[T] {
	return t.Root().NodeOrNil(path...)
}

// NodeAt returns the node at path from the root, or an error if path does not
// exist.
func (t *Tree[T]) NodeAt(path ...int) (*Node[T], error) {
	return t.Root().NodeAt(path...)
}

// StringPath renders the names along path from the root.
// See Node.StringPath.
func (t *Tree[T]) StringPath(path ...int) string {
	return t.Root().StringPath(path...)
}

// --- Appending at paths ----------------------------------------------------

// AppendNode appends node to the node at path from the root. It returns false
// and leaves the tree unchanged if path does not exist.
func (t *Tree[T]) AppendNode(node *Node[T], path ...int) bool {
	target := t.NodeOrNil(path...)
	if target == nil {
		return false
	}
	target.AppendChild(node)
	return true
}

// AppendNodes appends nodes, in order, to the node at path from the root. It
// returns false and leaves the tree unchanged if path does not exist.
func (t *Tree[T]) AppendNodes(nodes []*Node[T], path ...int) bool {
	target := t.NodeOrNil(path...)
	if target == nil {
		return false
	}
	target.AppendChildren(nodes...)
	return true
}

// NamesAtPath pairs a list of node names with a path from the root.
type NamesAtPath struct {
	Names []string
	Path  Path
}

// NamesAt is a shortcut to create a NamesAtPath pair.
func NamesAt(path Path, names ...string) NamesAtPath {
	return NamesAtPath{Names: names, Path: path}
}

// AppendEmptyNamedToPaths appends empty nodes for every pair: the names of the
// pair become children of the node at the pair's path. Pairs are processed
// independently and in order; a pair with a path that does not exist is
// skipped. The number of skipped pairs is returned, 0 meaning full success.
func (t *Tree[T]) AppendEmptyNamedToPaths(pairs ...NamesAtPath) (failed int) {
	for _, pair := range pairs {
		target := t.NodeOrNil(pair.Path...)
		if target == nil {
			failed++
			continue
		}
		target.AppendEmptyChildren(pair.Names...)
	}
	return failed
}

// AppendEmptyNamedToPathsStrict does the same as AppendEmptyNamedToPaths, but
// all or nothing: if the path of any pair does not exist, the tree is left
// unchanged and false is returned. Pairs targeting the same node are applied
// one after the other.
func (t *Tree[T]) AppendEmptyNamedToPathsStrict(pairs ...NamesAtPath) bool {
	targets := make([]*Node[T], len(pairs))
	for i, pair := range pairs {
		if targets[i] = t.NodeOrNil(pair.Path...); targets[i] == nil {
			tracer().Debugf("strict append aborted, path %v does not exist", pair.Path)
			return false
		}
	}
	for i, target := range targets {
		target.AppendEmptyChildren(pairs[i].Names...)
	}
	return true
}

// --- Whole tree ------------------------------------------------------------

// AllNodes returns all nodes of t in pre-order, starting with the root.
func (t *Tree[T]) AllNodes() []*Node[T] {
	return t.Root().AllNodes()
}

// Leaves returns all leaves of t, from left to right.
func (t *Tree[T]) Leaves() []*Node[T] {
	return t.Root().Leaves()
}

// Clone returns an independent deep copy of t, with the same name. The cursor
// of the copy is at the root.
func (t *Tree[T]) Clone() *Tree[T] {
	return New(WithName[T](t.name), WithRoot(t.Root().Clone()))
}
