package domain

import (
	"fmt"
)

// Tree is an immutable decision tree: an arena of nodes and, for each node,
// at most one target per boolean label.
// A Tree is only obtainable through NewTree, which enforces the structural invariants,
// so it can be shared freely between concurrent walks.
type Tree struct {
	name  string
	nodes []Node
	out   [][2]NodeID // index 0 = false branch, index 1 = true branch
	root  NodeID
	keys  map[string]NodeID
}

func slot(label bool) int {
	if label {
		return 1
	}
	return 0
}

// NewTree validates the node set and edge set and assembles a Tree.
// Node IDs are reassigned to their position in nodes.
//
// Rejected shapes: empty node set, unknown root, edges referencing unknown nodes,
// self edges, two edges with the same label leaving one node, a question whose
// branches share a target, nodes with exactly one outgoing edge, and duplicate
// non-empty keys. All problems are reported together.
func NewTree(name string, nodes []Node, edges []Edge, root NodeID) (*Tree, error) {
	var problems []string

	if len(nodes) == 0 {
		return nil, &TreeError{Tree: name, Problems: []string{"tree has no nodes"}}
	}

	t := &Tree{
		name:  name,
		nodes: make([]Node, len(nodes)),
		out:   make([][2]NodeID, len(nodes)),
		root:  root,
		keys:  make(map[string]NodeID),
	}

	for i, n := range nodes {
		n.ID = NodeID(i)
		t.nodes[i] = n
		t.out[i] = [2]NodeID{NoNode, NoNode}
		if n.Key == "" {
			continue
		}
		if prev, dup := t.keys[n.Key]; dup {
			problems = append(problems, fmt.Sprintf("duplicate key %q (nodes #%d and #%d)", n.Key, prev, i))
			continue
		}
		t.keys[n.Key] = n.ID
	}

	if !t.valid(root) {
		problems = append(problems, fmt.Sprintf("root #%d is not a node", root))
	}

	for _, e := range edges {
		if !t.valid(e.From) || !t.valid(e.To) {
			problems = append(problems, fmt.Sprintf("edge #%d -> #%d references an unknown node", e.From, e.To))
			continue
		}
		from := t.nodes[e.From]
		if e.From == e.To {
			problems = append(problems, fmt.Sprintf("node %s has a self edge", from.Label()))
			continue
		}
		if existing := t.out[e.From][slot(e.Label)]; existing != NoNode {
			problems = append(problems, fmt.Sprintf("node %s has two %t edges (to %s and %s)",
				from.Label(), e.Label, t.nodes[existing].Label(), t.nodes[e.To].Label()))
			continue
		}
		t.out[e.From][slot(e.Label)] = e.To
	}

	for i := range t.nodes {
		if no, yes := t.out[i][0], t.out[i][1]; yes != NoNode && yes == no {
			problems = append(problems, fmt.Sprintf("node %s: yes and no both lead to %s",
				t.nodes[i].Label(), t.nodes[yes].Label()))
		}
		if t.OutDegree(NodeID(i)) == 1 {
			missing := true
			if t.out[i][1] != NoNode {
				missing = false
			}
			problems = append(problems, fmt.Sprintf("node %s has no %t edge", t.nodes[i].Label(), missing))
		}
	}

	if len(problems) > 0 {
		return nil, &TreeError{Tree: name, Problems: problems}
	}
	return t, nil
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Name returns the descriptive name of the tree.
func (t *Tree) Name() string { return t.name }

// Root returns the designated root handle.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node for id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if !t.valid(id) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Lookup resolves a node key to its handle.
func (t *Tree) Lookup(key string) (NodeID, bool) {
	id, ok := t.keys[key]
	return id, ok
}

// Nodes returns a copy of the node arena in handle order.
func (t *Tree) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Edges returns every edge, ordered by source handle with the true branch first.
func (t *Tree) Edges() []Edge {
	var edges []Edge
	for i, branches := range t.out {
		for _, label := range []bool{true, false} {
			if to := branches[slot(label)]; to != NoNode {
				edges = append(edges, Edge{From: NodeID(i), To: to, Label: label})
			}
		}
	}
	return edges
}

// Target returns the node reached from id by following the edge labeled label.
func (t *Tree) Target(id NodeID, label bool) (NodeID, bool) {
	if !t.valid(id) {
		return NoNode, false
	}
	to := t.out[id][slot(label)]
	return to, to != NoNode
}

// OutDegree returns the number of outgoing edges of id (0 for unknown nodes).
func (t *Tree) OutDegree(id NodeID) int {
	if !t.valid(id) {
		return 0
	}
	n := 0
	for _, to := range t.out[id] {
		if to != NoNode {
			n++
		}
	}
	return n
}

// IsLeaf reports whether id is a terminal node (out-degree zero).
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.valid(id) && t.OutDegree(id) == 0
}

// Leaves returns the handles of all terminal nodes in handle order.
func (t *Tree) Leaves() []NodeID {
	var leaves []NodeID
	for i := range t.nodes {
		if t.OutDegree(NodeID(i)) == 0 {
			leaves = append(leaves, NodeID(i))
		}
	}
	return leaves
}

// Reachable returns the handles reachable from the root, root included, in handle order.
func (t *Tree) Reachable() []NodeID {
	seen := make([]bool, len(t.nodes))
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		for _, to := range t.out[id] {
			if to != NoNode && !seen[to] {
				stack = append(stack, to)
			}
		}
	}

	var ids []NodeID
	for i, ok := range seen {
		if ok {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}

// Depth returns the number of edges on the longest path from the root to a leaf.
// It returns -1 if a cycle is reachable from the root.
func (t *Tree) Depth() int {
	const (
		unvisited = iota
		active
		done
	)
	marks := make([]int, len(t.nodes))
	depth := make([]int, len(t.nodes))

	var visit func(id NodeID) bool
	visit = func(id NodeID) bool {
		switch marks[id] {
		case active:
			return false
		case done:
			return true
		}
		marks[id] = active
		best := 0
		for _, to := range t.out[id] {
			if to == NoNode {
				continue
			}
			if !visit(to) {
				return false
			}
			if d := depth[to] + 1; d > best {
				best = d
			}
		}
		depth[id] = best
		marks[id] = done
		return true
	}

	if !visit(t.root) {
		return -1
	}
	return depth[t.root]
}

// Acyclic reports whether every walk from the root terminates.
func (t *Tree) Acyclic() bool {
	return t.Depth() >= 0
}
