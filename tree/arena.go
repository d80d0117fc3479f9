package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The TreeBuilder Authors

*/

import "slices"

/*
Nodes of a hierarchy are stored in an arena. Links between nodes (parent,
children) are arena identifiers; the owning tree is a property of the arena as
a whole. Every record holds the one and only *Node handle for it, and moving a
record to another arena re-points that handle. Clients therefore never notice
when a subtree changes arenas.

An arena may hold more than one top-level record: a tree's root, and nodes the
builder has allocated but not yet attached. Records of subtrees which moved to
another arena are vacated and never used again.
*/

type nodeID int

const noNode nodeID = -1

type record[T any] struct {
	node      *Node[T] // canonical handle, nil for vacated records
	name      string
	attrs     []T
	parent    nodeID
	children  []nodeID
	depth     int
	index     int // position among siblings
	nextIndex int // lowest unused sibling index for children
}

type arena[T any] struct {
	records []record[T]
	tree    *Tree[T] // owning tree, nil for bare nodes
}

func newArena[T any](owner *Tree[T]) *arena[T] {
	return &arena[T]{tree: owner}
}

// alloc creates a new top-level record and returns its handle. The record
// keeps a copy of attrs.
func (a *arena[T]) alloc(name string, attrs []T) *Node[T] {
	n := &Node[T]{arena: a, id: nodeID(len(a.records))}
	a.records = append(a.records, record[T]{
		node:   n,
		name:   name,
		attrs:  slices.Clone(attrs),
		parent: noNode,
	})
	return n
}

// top returns the topmost ancestor of id (id itself if it has no parent).
func (a *arena[T]) top(id nodeID) nodeID {
	for a.records[id].parent != noNode {
		id = a.records[id].parent
	}
	return id
}

// link appends top-level record c to the children of p. Both must live in a.
func (a *arena[T]) link(p, c nodeID) {
	a.records[c].parent = p
	a.records[c].index = a.records[p].nextIndex
	a.records[p].nextIndex++
	a.records[p].children = append(a.records[p].children, c)
	a.setDepth(c, a.records[p].depth+1)
}

// setDepth sets the depth of id and re-calculates the depths of its subtree.
// Depths within a subtree are always consistent relative to its top, so we
// may stop early if nothing changes.
func (a *arena[T]) setDepth(id nodeID, depth int) {
	if a.records[id].depth == depth {
		return
	}
	a.records[id].depth = depth
	for _, ch := range a.records[id].children {
		a.setDepth(ch, depth+1)
	}
}

// adopt moves the subtree of top-level node n from its arena into a.
// Sibling indices and depths within the subtree are unchanged.
func (a *arena[T]) adopt(n *Node[T]) {
	src := n.arena
	assertThat(src != a, "cannot adopt a node from its own arena")
	var move func(old, parent nodeID) nodeID
	move = func(old, parent nodeID) nodeID {
		r := src.records[old]
		src.records[old] = record[T]{parent: noNode} // vacate
		id := nodeID(len(a.records))
		a.records = append(a.records, record[T]{
			node:      r.node,
			name:      r.name,
			attrs:     r.attrs,
			parent:    parent,
			depth:     r.depth,
			index:     r.index,
			nextIndex: r.nextIndex,
		})
		r.node.arena, r.node.id = a, id
		children := make([]nodeID, 0, len(r.children))
		for _, ch := range r.children {
			children = append(children, move(ch, id))
		}
		a.records[id].children = children
		return id
	}
	move(n.id, noNode)
	tracer().Debugf("moved subtree of %v into new arena", n)
}

// copyOf creates a deep copy of the subtree at id in src as a new top-level
// record of a. Children are re-appended in their original order, so sibling
// indices are re-assigned, not copied.
func (a *arena[T]) copyOf(src *arena[T], id nodeID) nodeID {
	c := a.alloc(src.records[id].name, src.records[id].attrs).id
	for _, ch := range src.records[id].children {
		a.link(c, a.copyOf(src, ch))
	}
	return c
}
