/*
Package tree implements a generic, ordered tree container.

Nodes carry a name and an ordered list of attributes of type T. They are
addressed by paths, i.e. sequences of sibling-indices descending from a root
(or from any other node). The empty path denotes the start node itself.

	t := tree.New[string](tree.WithRootName[string]("Menu"))
	t.Root().AppendEmptyChildren("Info", "Friends", "Support")
	friends, _ := t.NodeAt(1)
	friends.AppendEmptyChildren("Public", "Local")
	fmt.Println(t.StringPath(1, 0)) // Menu -> Friends -> Public

Storage

All nodes of a hierarchy live in an arena owned by the tree. Parent, children
and the back-reference to the owning tree are expressed as arena identifiers,
not as pointers between nodes. Clients only ever see *Node handles; every node
has exactly one handle, so handles may be compared for identity.

A node created with NewNode is bare: it lives in an arena of its own until it is
appended to a parent. Appending moves the node (together with any children it
already has) into the parent's arena. Nodes are never removed and sibling
indices are never re-used.

Cursor

A Tree carries a cursor, a path pointing to the node the client is currently
"at". Cursor operations never fail loudly: invalid moves leave the cursor where
it was. The cursor always denotes an existing node.

Builder

Trees may be assembled declaratively with a Builder. The builder checks its
usage (a single root, nodes only after the root, resolvable paths) and reports
the first violation from Build:

	t, err := tree.Build(func(b *tree.Builder[string]) {
		b.Name("Main Menu")
		b.Root("Menu")
		b.EmptyNodes("Info", "Friends")
		b.AtPath(tree.Path{1}, func(c *tree.NodeContext[string]) {
			c.EmptyNodes("Public", "Local")
		})
	})

Errors

Operations which require a path to exist (NodeAt, all builder checks) report a
*TreeError. Lookups with optional results (NodeOrNil, CheckPath, the cursor
operations, best-effort appends) never fail; they signal absence by nil, a
boolean or a result code and leave the tree untouched.

Trees are not safe for concurrent mutation. Use Clone to hand out independent
copies.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The TreeBuilder Authors

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treebuilder.tree'.
func tracer() tracing.Trace {
	return tracing.Select("treebuilder.tree")
}

// assertThat panics with an invariant error if that is false.
func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(&TreeError{
			Kind: ErrInvariant,
			At:   -1,
			Msg:  fmt.Sprintf(msg, msgargs...),
		})
	}
}
