package tree

import (
	"strconv"
	"strings"
)

// Path is a sequence of sibling-indices, descending from a start node. The
// empty path denotes the start node itself.
type Path []int

// RootPath is the path of a root node, relative to itself.
var RootPath = Path{}

// Results of CheckPath, besides a failure position.
const (
	PathEmpty = -1 // path was empty: no traversal, but not an error
	PathFound = 0  // the entire path resolves
)

func (path Path) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	for i, index := range path {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(index))
	}
	sb.WriteRune(']')
	return sb.String()
}

// Clone returns a copy of path which does not share storage with path.
func (path Path) Clone() Path {
	if path == nil {
		return nil
	}
	c := make(Path, len(path))
	copy(c, path)
	return c
}

// Concat returns a new path: path followed by other.
func (path Path) Concat(other ...int) Path {
	c := make(Path, 0, len(path)+len(other))
	c = append(c, path...)
	return append(c, other...)
}

// DropLast returns path without its last n elements. If n exceeds the length
// of path, the empty path is returned. n must not be negative.
func (path Path) DropLast(n int) Path {
	assertThat(n >= 0, "cannot drop %d elements from path %v", n, path)
	if n >= len(path) {
		return Path{}
	}
	return path[:len(path)-n].Clone()
}

// Last returns the last index of path, or -1 for the empty path.
func (path Path) Last() int {
	if len(path) == 0 {
		return -1
	}
	return path[len(path)-1]
}

// Equal is true if both paths contain the same indices in the same order.
// A nil path and an empty path are equal.
func (path Path) Equal(other Path) bool {
	if len(path) != len(other) {
		return false
	}
	for i := range path {
		if path[i] != other[i] {
			return false
		}
	}
	return true
}

// --- Resolution ------------------------------------------------------------

// walk descends from node id along path. It returns the node reached and -1,
// or noNode and the position within path where descending failed.
//
// This is the single traversal every path lookup is built upon; the fail-fast
// and the fail-soft API only differ in how they report a failure.
func (a *arena[T]) walk(id nodeID, path Path) (nodeID, int) {
	for i, index := range path {
		children := a.records[id].children
		if index < 0 || index >= len(children) {
			return noNode, i
		}
		id = children[index]
	}
	return id, -1
}

// check converts the result of walk into the tri-state of CheckPath.
func (a *arena[T]) check(id nodeID, path Path) (int, bool) {
	if len(path) == 0 {
		return PathEmpty, true
	}
	if _, at := a.walk(id, path); at >= 0 {
		return at, false
	}
	return PathFound, true
}
