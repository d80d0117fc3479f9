package samples

import (
	"fmt"

	"github.com/lifestreamy/TreeBuilder/tree"
)

// Generic builds a tree of int attributes in two steps: a declarative
// skeleton, which is then extended imperatively.
//
// The cursor of the resulting tree points to node [0, 1, 0] ("g0").
func Generic() (*tree.Tree[int], error) {
	t, err := tree.Build(func(b *tree.Builder[int]) {
		b.Name("Generic Tree")
		b.RootWith(func(r *tree.RootContext[int]) {
			r.Name = "Generic"
			r.Attributes = []int{1, 2}
		})
		b.EmptyNodes("a0", "a1", "a2", "a3")
		b.EmptyNode("Empty")
		b.AtPath(tree.Path{0}, func(c *tree.NodeContext[int]) {
			c.EmptyNodes("b0", "b1", "b2")
			c.AtRelativePath(tree.Path{0}, func(c *tree.NodeContext[int]) {
				c.EmptyNodes("f0", "f1")
				c.AtRelativePath(tree.Path{1}, func(c *tree.NodeContext[int]) {
					c.EmptyNodes("j0")
				})
				c.EmptyNodes("")
			})
			c.EmptyNodes("Empty1", "Empty2")
			c.EmptyNode("")
		})
	})
	if err != nil {
		return nil, err
	}
	t.SetRootName("Generic Root").SetRootAttributes(1, 2, 3)
	failed := t.AppendEmptyNamedToPaths(
		tree.NamesAt(tree.Path{1}, "c0", "c1", "c2"),
		tree.NamesAt(tree.Path{2}, "d0", "d1", "d2"),
		tree.NamesAt(tree.Path{3}, "e0", "e1", "e2"),
		tree.NamesAt(tree.Path{0, 1}, "g0", "g1"),
		tree.NamesAt(tree.Path{0, 2}, "h0", "h1"),
		tree.NamesAt(tree.Path{0, 0, 0}, "i0"),
		tree.NamesAt(tree.Path{0, 1, 0}, "k0"),
		tree.NamesAt(tree.Path{0, 1, 1}, "l0"),
		tree.NamesAt(tree.Path{0, 2, 0}, "m0"),
		tree.NamesAt(tree.Path{0, 2, 1}, "n0"),
		tree.NamesAt(tree.Path{0, 2, 0}, "o0"),
		tree.NamesAt(tree.Path{0, 2, 1}, "p0"),
	)
	if failed > 0 {
		return nil, fmt.Errorf("generic sample: %d of the paths to extend do not exist", failed)
	}
	g0, err := t.NodeAt(0, 1, 0)
	if err != nil {
		return nil, err
	}
	g0.SetAttributes(1, 2, 3)
	t.CursorSet(g0.Path()...)
	return t, nil
}
