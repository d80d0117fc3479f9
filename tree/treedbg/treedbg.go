/*
Package treedbg implements helpers to print and debug trees.

Output formats are meant for humans. The line format of NodesWithDepth puts
every node on a line of its own, shifted right by 20 spaces per level of depth:

	(0) Menu
	                    (1) Info
	                                        (2) See Your Info

To read it: all nodes with depth (x+1) to the right of and below a node of
depth (x) are its children.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The TreeBuilder Authors

*/
package treedbg

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/lifestreamy/TreeBuilder/tree"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'treebuilder.treedbg'.
func tracer() tracing.Trace {
	return tracing.Select("treebuilder.treedbg")
}

// DefaultIndent is the number of spaces per level of depth.
const DefaultIndent = 20

type config struct {
	indent int
	colors bool
}

// Option configures a Printer.
type Option func(*config)

// WithIndent sets the number of spaces per level of depth.
func WithIndent(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.indent = n
		}
	}
}

// WithColors switches colored depth markers on or off. Colors are off by
// default.
func WithColors(enable bool) Option {
	return func(c *config) {
		c.colors = enable
	}
}

// Printer writes trees and lists of nodes to an output stream.
type Printer[T any] struct {
	out    io.Writer
	indent int
	depth  func(a ...interface{}) string
}

// NewPrinter creates a printer writing to w, or to stdout if w is nil.
func NewPrinter[T any](w io.Writer, opts ...Option) *Printer[T] {
	cfg := config{indent: DefaultIndent}
	for _, option := range opts {
		option(&cfg)
	}
	if w == nil {
		w = os.Stdout
	}
	p := &Printer[T]{out: w, indent: cfg.indent, depth: fmt.Sprint}
	if cfg.colors {
		c := color.New(color.FgCyan, color.Bold)
		c.EnableColor()
		p.depth = c.SprintFunc()
	}
	return p
}

// Line formats a single node: indentation, depth marker and name.
func (p *Printer[T]) Line(node *tree.Node[T]) string {
	marker := p.depth(fmt.Sprintf("(%d)", node.Depth()))
	return strings.Repeat(" ", p.indent*node.Depth()) + marker + " " + node.Name()
}

// NodesWithDepth prints one line per node, in the order given.
func (p *Printer[T]) NodesWithDepth(nodes []*tree.Node[T]) {
	for _, node := range nodes {
		fmt.Fprintln(p.out, p.Line(node))
	}
}

// Visualize prints all nodes of t, in pre-order, preceded by a short header.
func (p *Printer[T]) Visualize(t *tree.Tree[T]) {
	nodes := t.AllNodes()
	fmt.Fprintln(p.out, "Visualizing a tree:")
	fmt.Fprintf(p.out, "Tree name = %q\n", t.Name())
	fmt.Fprintf(p.out, "All nodes (amount = %d) are:\n", len(nodes))
	p.NodesWithDepth(nodes)
}

// Leaves prints all leaves of t, right to left.
func (p *Printer[T]) Leaves(t *tree.Tree[T]) {
	leaves := t.Leaves()
	slices.Reverse(leaves)
	fmt.Fprintf(p.out, "All leaf nodes (amount = %d) are:\n", len(leaves))
	p.NodesWithDepth(leaves)
}

// Visualize prints t to w, using a default printer.
func Visualize[T any](w io.Writer, t *tree.Tree[T]) {
	NewPrinter[T](w).Visualize(t)
}

// Leaves prints the leaves of t to w, using a default printer.
func Leaves[T any](w io.Writer, t *tree.Tree[T]) {
	NewPrinter[T](w).Leaves(t)
}

// --- treeprint -------------------------------------------------------------

// Treeprint renders t with box-drawing characters. Nodes with attributes show
// them after their name.
func Treeprint[T any](t *tree.Tree[T]) string {
	p := tp.New()
	ppt(p, t.Root())
	return p.String()
}

func ppt[T any](p tp.Tree, node *tree.Node[T]) {
	label := node.Name()
	if attrs := node.Attributes(); len(attrs) > 0 {
		label = fmt.Sprintf("%s %v", label, attrs)
	}
	if !node.HasChildren() {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range node.Children() {
		ppt(branch, ch)
	}
}
