package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The TreeBuilder Authors

*/

import (
	"errors"
	"strconv"
	"strings"
)

// Kinds of errors. A *TreeError unwraps to one of these, so clients may test
// with errors.Is.
var (
	// ErrPath is reported if a path does not denote an existing node.
	ErrPath = errors.New("path does not exist")

	// ErrBuilder is reported if a Builder is used incorrectly.
	ErrBuilder = errors.New("tree builder misuse")

	// ErrInvariant is the panic value kind for structural invariant violations.
	ErrInvariant = errors.New("tree invariant violated")
)

// TreeError is the single error type of this package.
type TreeError struct {
	Kind error  // ErrPath, ErrBuilder or ErrInvariant
	Path Path   // offending path, if any
	At   int    // position within Path where resolution failed, or -1
	Msg  string // human readable description
}

func (e *TreeError) Error() string {
	var sb strings.Builder
	sb.WriteString("tree: ")
	if e.Msg != "" {
		sb.WriteString(e.Msg)
	} else if e.Kind != nil {
		sb.WriteString(e.Kind.Error())
	}
	if e.Path != nil {
		sb.WriteString(" (path ")
		sb.WriteString(e.Path.String())
		if e.At >= 0 {
			sb.WriteString(", failed at position ")
			sb.WriteString(strconv.Itoa(e.At))
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap returns the error kind.
func (e *TreeError) Unwrap() error {
	return e.Kind
}

func pathError(path Path, at int) *TreeError {
	return &TreeError{
		Kind: ErrPath,
		Path: path.Clone(),
		At:   at,
		Msg:  "the path does not exist",
	}
}
