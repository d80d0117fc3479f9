package main

import (
	"bytes"
	"testing"

	"github.com/lifestreamy/TreeBuilder/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts = options{color: "auto"}
	require.NoError(t, menuCmd.Flags().Set("imperative", "false"))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMenuCommand(t *testing.T) {
	out, err := run(t, "menu", "--path", "1,0,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, `Tree name = "Main Menu"`)
	assert.Contains(t, out, "All nodes (amount = 65) are:")
	assert.Contains(t, out, "Menu -> Friends Actions -> Public friends -> My friend list -> Go Back")
	assert.NotContains(t, out, "\x1b[", "no colors when not writing to a terminal")
}

func TestMenuCommandInvalidPath(t *testing.T) {
	out, err := run(t, "menu", "--imperative", "--path", "0,0,0,0")
	require.Error(t, err)
	assert.ErrorIs(t, err, tree.ErrPath)
	assert.Contains(t, out, tree.InvalidPath)
}

func TestGenericCommand(t *testing.T) {
	out, err := run(t, "generic", "--treeprint")
	require.NoError(t, err)
	assert.Contains(t, out, "Generic Root [1 2 3]")
	assert.Contains(t, out, "Cursor at [0, 1, 0]: Generic Root -> a0 -> b1 -> g0")
	//
	out, err = run(t, "generic", "--dot")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph g {")
}

func TestColorFlag(t *testing.T) {
	out, err := run(t, "generic", "--leaves", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	_, err = run(t, "generic", "--color", "sometimes")
	assert.Error(t, err)
}

func TestParsePath(t *testing.T) {
	p, err := parsePath("1, 0,2")
	require.NoError(t, err)
	assert.Equal(t, tree.Path{1, 0, 2}, p)
	_, err = parsePath("1,x")
	assert.Error(t, err)
}
