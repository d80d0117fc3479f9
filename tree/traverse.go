package tree

// AllNodes returns node and all of its descendants in pre-order: a node is
// followed by the complete subtrees of its children, in append order.
func (node *Node[T]) AllNodes() []*Node[T] {
	var nodes []*Node[T]
	node.Walk(func(n *Node[T]) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// Leaves returns all nodes without children below (and including) node, from
// left to right. For a leaf, this is node itself.
func (node *Node[T]) Leaves() []*Node[T] {
	var leaves []*Node[T]
	node.Walk(func(n *Node[T]) bool {
		if !n.HasChildren() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// Walk calls visit for node and its descendants in pre-order. If visit returns
// false, the subtree below the visited node is skipped.
func (node *Node[T]) Walk(visit func(*Node[T]) bool) {
	node.arena.walkFrom(node.id, visit)
}

func (a *arena[T]) walkFrom(id nodeID, visit func(*Node[T]) bool) {
	if !visit(a.records[id].node) {
		return
	}
	for _, ch := range a.records[id].children {
		a.walkFrom(ch, visit)
	}
}
