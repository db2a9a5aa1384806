package domain

import "fmt"

// NodeID is the handle of a node inside its Tree. Handles are dense arena indexes.
type NodeID int

// NoNode marks the absence of a node (e.g. an unset branch).
const NoNode NodeID = -1

// Node represents a point in the decision tree.
type Node struct {
	ID NodeID `json:"id" yaml:"id"`

	// Key is an optional stable name used by external definitions and diagnostics.
	Key string `json:"key,omitempty" yaml:"key,omitempty"`

	// Text is the display payload. It may contain fill-in placeholders such as {noun}.
	Text string `json:"text" yaml:"text"`
}

// Label returns the key when set, otherwise the numeric handle.
func (n Node) Label() string {
	if n.Key != "" {
		return n.Key
	}
	return fmt.Sprintf("#%d", n.ID)
}

// Edge is a directed, boolean-labeled connection between two nodes.
type Edge struct {
	From  NodeID `json:"from" yaml:"from"`
	To    NodeID `json:"to" yaml:"to"`
	Label bool   `json:"label" yaml:"label"`
}
