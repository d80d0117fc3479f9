package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lifestreamy/TreeBuilder/tree"
	"github.com/lifestreamy/TreeBuilder/tree/treedbg"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

type options struct {
	leaves    bool
	treeprint bool
	dot       bool
	path      string
	color     string
	trace     string
}

var opts options

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.leaves, "leaves", "l", false, "print the leaves, right to left")
	pf.BoolVarP(&opts.treeprint, "treeprint", "t", false, "print the tree with box-drawing characters")
	pf.BoolVar(&opts.dot, "dot", false, "output the tree in GraphViz DOT format")
	pf.StringVarP(&opts.path, "path", "p", "", "print the names along a path, e.g. 1,0,0,0")
	pf.StringVar(&opts.color, "color", "auto", "colored depth markers: auto, always or never")
	pf.StringVar(&opts.trace, "trace", "", "trace level for tree operations: Error, Info or Debug")
	rootCmd.AddCommand(menuCmd, genericCmd)
}

var rootCmd = &cobra.Command{
	Use:   "treedemo",
	Short: "Build sample trees and print them",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if opts.trace == "" {
			return nil
		}
		tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
		tracing.Select("treebuilder.tree").SetTraceLevel(tracing.TraceLevelFromString(opts.trace))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// show prints t to w, as selected by the flags.
func show[T any](w io.Writer, t *tree.Tree[T], o options) error {
	if o.dot {
		return treedbg.ToGraphViz(t, w, true)
	}
	colors, err := useColors(w, o.color)
	if err != nil {
		return err
	}
	p := treedbg.NewPrinter[T](w, treedbg.WithColors(colors))
	switch {
	case o.treeprint:
		fmt.Fprint(w, treedbg.Treeprint(t))
	case o.leaves:
		p.Leaves(t)
	default:
		p.Visualize(t)
	}
	if o.path != "" {
		path, err := parsePath(o.path)
		if err != nil {
			return err
		}
		if _, err := t.NodeAt(path...); err != nil {
			fmt.Fprintln(w, tree.InvalidPath)
			return err
		}
		fmt.Fprintf(w, "Path %v: %s\n", path, t.StringPath(path...))
	}
	if !t.CursorIsAtRoot() {
		fmt.Fprintf(w, "Cursor at %v: %s\n", t.CursorPath(), t.CursorNode().StringPathFromRoot())
	}
	return nil
}

// useColors decides on colored output. "auto" colors output to terminals only.
func useColors(w io.Writer, mode string) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && isatty.IsTerminal(f.Fd()), nil
	}
	return false, fmt.Errorf("invalid color mode %q", mode)
}

// parsePath reads a comma separated list of sibling indices.
func parsePath(s string) (tree.Path, error) {
	path := tree.Path{}
	for _, field := range strings.Split(s, ",") {
		index, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", s, err)
		}
		path = append(path, index)
	}
	return path, nil
}
