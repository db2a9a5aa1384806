package dsl

import (
	"fmt"

	"github.com/aretw0/crossroads/pkg/domain"
)

// Builder manages the tree construction.
type Builder struct {
	name  string
	order []string
	nodes map[string]*NodeBuilder
	root  string
	errs  []string
}

// New creates a new tree builder.
func New(name string) *Builder {
	return &Builder{
		name:  name,
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new node in the tree.
// If the node already exists, it returns the existing builder.
// The first node added becomes the root unless Root is called.
func (b *Builder) Add(key string) *NodeBuilder {
	if nb, ok := b.nodes[key]; ok {
		return nb
	}
	nb := &NodeBuilder{key: key, builder: b}
	b.nodes[key] = nb
	b.order = append(b.order, key)
	return nb
}

// Root designates the node the walk starts from.
func (b *Builder) Root(key string) *Builder {
	b.root = key
	return b
}

// Build compiles the builder into an immutable tree.
// Every structural problem is reported at once in a *domain.TreeError.
func (b *Builder) Build() (*domain.Tree, error) {
	index := make(map[string]domain.NodeID, len(b.order))
	nodes := make([]domain.Node, 0, len(b.order))
	for i, key := range b.order {
		index[key] = domain.NodeID(i)
		nodes = append(nodes, domain.Node{Key: key, Text: b.nodes[key].text})
	}

	problems := append([]string(nil), b.errs...)
	var edges []domain.Edge
	for _, key := range b.order {
		nb := b.nodes[key]
		for _, br := range nb.branches {
			to, ok := index[br.target]
			if !ok {
				problems = append(problems, fmt.Sprintf("node %s: %t edge references unknown node %q", key, br.label, br.target))
				continue
			}
			edges = append(edges, domain.Edge{From: index[key], To: to, Label: br.label})
		}
	}

	root := domain.NodeID(0)
	if b.root != "" {
		id, ok := index[b.root]
		if !ok {
			problems = append(problems, fmt.Sprintf("root %q is not a node", b.root))
		}
		root = id
	}

	if len(problems) > 0 {
		return nil, &domain.TreeError{Tree: b.name, Problems: problems}
	}

	tree, err := domain.NewTree(b.name, nodes, edges, root)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree: %w", err)
	}
	return tree, nil
}

// MustBuild is like Build but panics on a malformed topology.
// It is meant for trees declared in code, where a bad shape is a programming defect.
func (b *Builder) MustBuild() *domain.Tree {
	tree, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tree
}
