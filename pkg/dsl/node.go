package dsl

import "github.com/aretw0/crossroads/pkg/domain"

type branch struct {
	label  bool
	target string
}

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	key      string
	text     string
	branches []branch
	builder  *Builder
}

// Text sets the display content of the node. It may contain fill-in placeholders.
func (n *NodeBuilder) Text(content string) *NodeBuilder {
	n.text = content
	return n
}

// Yes adds the edge followed when the answer is true.
func (n *NodeBuilder) Yes(target string) *NodeBuilder {
	return n.Branch(true, target)
}

// No adds the edge followed when the answer is false.
func (n *NodeBuilder) No(target string) *NodeBuilder {
	return n.Branch(false, target)
}

// Branch adds an edge labeled with answer.
func (n *NodeBuilder) Branch(answer bool, target string) *NodeBuilder {
	n.branches = append(n.branches, branch{label: answer, target: target})
	return n
}

// Terminal marks the node as a leaf (end of the walk).
func (n *NodeBuilder) Terminal() *NodeBuilder {
	n.branches = nil
	return n
}

// Build returns the node as it will appear in the tree (without its final handle).
func (n *NodeBuilder) Build() domain.Node {
	return domain.Node{Key: n.key, Text: n.text}
}
