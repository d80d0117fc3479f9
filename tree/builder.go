package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The TreeBuilder Authors

*/

import (
	"fmt"
)

// DefaultTreeName is the name of a built tree if the builder did not set one.
const DefaultTreeName = "Tree"

// Builder assembles a tree declaratively. Nested parts of the tree are
// declared within scopes: functions receiving a *NodeContext for the node
// they populate.
//
// The builder checks how it is used. The first misuse is recorded and makes
// all further calls no-ops; it is reported by Err and Build as a *TreeError
// of kind ErrBuilder. Misuses are
//
//   - declaring the root more than once, or never,
//   - setting the tree name more than once,
//   - declaring nodes before the root,
//   - referring to paths which do not exist (yet),
//   - calling EmptyNodes without names.
type Builder[T any] struct {
	tree   *Tree[T]
	rooted bool
	named  bool
	err    error
}

// NewBuilder creates a builder for an empty tree.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{tree: New[T]()}
}

// Build runs build with a new builder and returns the finished tree.
//
//	t, err := tree.Build(func(b *tree.Builder[int]) {
//		b.Root("numbers")
//		b.Node("one", []int{1}, func(c *tree.NodeContext[int]) {
//			c.EmptyNodes("a", "b")
//		})
//	})
func Build[T any](build func(*Builder[T])) (*Tree[T], error) {
	b := NewBuilder[T]()
	build(b)
	return b.Build()
}

func (b *Builder[T]) fail(path Path, at int, msg string, msgargs ...interface{}) {
	if b.err != nil {
		return
	}
	b.err = &TreeError{
		Kind: ErrBuilder,
		Path: path.Clone(),
		At:   at,
		Msg:  fmt.Sprintf(msg, msgargs...),
	}
	tracer().Errorf("%v", b.err)
}

// Err returns the first misuse of the builder, if any.
func (b *Builder[T]) Err() error {
	return b.err
}

// Tree returns the tree under construction.
func (b *Builder[T]) Tree() *Tree[T] {
	return b.tree
}

// Name sets the name of the tree. It may be called once.
func (b *Builder[T]) Name(name string) {
	if b.err != nil {
		return
	}
	if b.named {
		b.fail(nil, -1, "tree name has already been specified")
		return
	}
	b.tree.SetName(name)
	b.named = true
}

// RootContext collects the properties of a root node.
type RootContext[T any] struct {
	Name       string
	Attributes []T
}

// Root declares the root node of the tree. It may be called once, and before
// any other node is declared.
func (b *Builder[T]) Root(name string, attributes ...T) {
	b.declareRoot(func() *Node[T] {
		return NewNode(name, attributes...)
	})
}

// RootWith declares the root node of the tree, configured by init. The root
// is named "Root" unless init changes it.
func (b *Builder[T]) RootWith(init func(*RootContext[T])) {
	b.declareRoot(func() *Node[T] {
		rc := &RootContext[T]{Name: "Root"}
		if init != nil {
			init(rc)
		}
		return NewNode(rc.Name, rc.Attributes...)
	})
}

func (b *Builder[T]) declareRoot(create func() *Node[T]) {
	if b.err != nil {
		return
	}
	if b.rooted {
		b.fail(nil, -1, "the root was declared more than once")
		return
	}
	b.tree.setRoot(create())
	b.rooted = true
	tracer().Debugf("tree builder: root %q declared", b.tree.Root().Name())
}

func (b *Builder[T]) requireRoot() bool {
	if b.err != nil {
		return false
	}
	if !b.rooted {
		b.fail(nil, -1, "cannot add nodes, the root has not been declared yet")
		return false
	}
	return true
}

// Node declares a new child of the root, configured by init (which may be nil).
func (b *Builder[T]) Node(name string, attributes []T, init func(*NodeContext[T])) {
	if b.requireRoot() {
		b.contextFor(b.tree.Root()).Node(name, attributes, init)
	}
}

// EmptyNode declares a new child of the root without attributes.
func (b *Builder[T]) EmptyNode(name string) {
	if b.requireRoot() {
		b.contextFor(b.tree.Root()).EmptyNode(name)
	}
}

// EmptyNodes declares new children of the root without attributes, one for
// each name. It returns the number of names.
func (b *Builder[T]) EmptyNodes(names ...string) int {
	if !b.requireRoot() {
		return 0
	}
	return b.contextFor(b.tree.Root()).EmptyNodes(names...)
}

// AtPath opens a scope for the node at path from the root. The node must
// have been declared before.
func (b *Builder[T]) AtPath(path Path, init func(*NodeContext[T])) {
	if !b.requireRoot() {
		return
	}
	node := b.tree.NodeOrNil(path...)
	if node == nil {
		at, _ := b.tree.CheckPath(path...)
		b.fail(path, at, "tried adding nodes to a non-existent path")
		return
	}
	b.scope(node, init)
}

// Build validates and returns the finished tree.
func (b *Builder[T]) Build() (*Tree[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.rooted {
		b.fail(nil, -1, "no root node declared")
		return nil, b.err
	}
	b.validate()
	if b.err != nil {
		return nil, b.err
	}
	if !b.named {
		b.tree.SetName(DefaultTreeName)
	}
	return b.tree, nil
}

// validate checks every node of the assembled tree for structural
// consistency.
func (b *Builder[T]) validate() {
	b.tree.Root().Walk(func(n *Node[T]) bool {
		if b.err != nil {
			return false
		}
		if n.Tree() != b.tree {
			b.fail(n.Path(), -1, "node %q references a wrong tree instance", n.Name())
			return false
		}
		if p := n.Parent(); p != nil {
			if n.Depth() != p.Depth()+1 {
				b.fail(n.Path(), -1, "node %q has depth %d below a parent of depth %d",
					n.Name(), n.Depth(), p.Depth())
			} else if ch, _ := p.Child(n.Index()); ch != n {
				b.fail(n.Path(), -1, "node %q is not at its index %d", n.Name(), n.Index())
			}
		}
		return b.err == nil
	})
}

// --- Node contexts ---------------------------------------------------------

// NodeContext is the scope for declaring the children of a node. Name and
// Attributes start as copies of the node's own values; they may be changed
// freely within the scope and are written back to the node when the scope
// ends.
type NodeContext[T any] struct {
	Name       string
	Attributes []T
	b          *Builder[T]
	node       *Node[T]
}

func (b *Builder[T]) contextFor(node *Node[T]) *NodeContext[T] {
	return &NodeContext[T]{
		Name:       node.Name(),
		Attributes: node.Attributes(),
		b:          b,
		node:       node,
	}
}

// scope runs init within a context for node and commits the context's
// name and attributes afterwards.
func (b *Builder[T]) scope(node *Node[T], init func(*NodeContext[T])) {
	c := b.contextFor(node)
	if init != nil {
		init(c)
	}
	node.SetName(c.Name)
	node.SetAttributes(c.Attributes...)
}

// Current returns the node this context populates.
func (c *NodeContext[T]) Current() *Node[T] {
	return c.node
}

// Node declares a new child, configured by init (which may be nil). The child
// is appended after init returns, i.e. after its own children.
func (c *NodeContext[T]) Node(name string, attributes []T, init func(*NodeContext[T])) {
	if c.b.err != nil {
		return
	}
	child := c.node.arena.alloc(name, attributes)
	c.b.scope(child, init)
	c.node.AppendChild(child)
}

// EmptyNode declares a new child without attributes.
func (c *NodeContext[T]) EmptyNode(name string) {
	if c.b.err != nil {
		return
	}
	c.node.AppendNamedChild(name)
}

// EmptyNodes declares new children without attributes, one for each name. It
// returns the number of names.
func (c *NodeContext[T]) EmptyNodes(names ...string) int {
	if c.b.err != nil {
		return 0
	}
	if len(names) == 0 {
		c.b.fail(nil, -1, "EmptyNodes called without names")
		return 0
	}
	c.node.AppendEmptyChildren(names...)
	return len(names)
}

// AtRelativePath opens a scope for the node at path, relative to this
// context's node.
func (c *NodeContext[T]) AtRelativePath(path Path, init func(*NodeContext[T])) {
	if c.b.err != nil {
		return
	}
	node := c.node.NodeOrNil(path...)
	if node == nil {
		at, _ := c.node.CheckPath(path...)
		c.b.fail(path, at, "tried adding nodes to a non-existent relative path")
		return
	}
	c.b.scope(node, init)
}
