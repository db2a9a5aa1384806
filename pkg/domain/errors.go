package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTree signals a defect in the tree topology itself.
// It is never a user error: the walk must be aborted, not recovered.
var ErrMalformedTree = errors.New("malformed decision tree")

// ErrNodeNotFound is returned when a state points at a handle the tree does not contain.
var ErrNodeNotFound = errors.New("node not found")

// MissingEdgeError is raised when a walk asks for a branch the current node does not have.
type MissingEdgeError struct {
	Node  Node
	Label bool
}

func (e *MissingEdgeError) Error() string {
	return fmt.Sprintf("node %s has no %t edge", e.Node.Label(), e.Label)
}

func (e *MissingEdgeError) Unwrap() error {
	return ErrMalformedTree
}

// TreeError aggregates every structural problem found while assembling a tree.
type TreeError struct {
	Tree     string
	Problems []string
}

func (e *TreeError) Error() string {
	name := e.Tree
	if name == "" {
		name = "tree"
	}
	return fmt.Sprintf("%s: found %d problems:\n- %s", name, len(e.Problems), strings.Join(e.Problems, "\n- "))
}

func (e *TreeError) Unwrap() error {
	return ErrMalformedTree
}
