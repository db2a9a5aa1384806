package dsl

import (
	"fmt"

	"github.com/aretw0/crossroads/pkg/domain"
)

// NodeSpec is one row of a Table: a stable key and its display text.
type NodeSpec struct {
	Key  string
	Text string
}

// EdgeSpec is a (from, to, label) triple of a Table.
type EdgeSpec struct {
	From  string
	To    string
	Label bool
}

// Table is the declarative form of a tree: a literal list of nodes and edge triples.
// The root defaults to the first node.
type Table struct {
	Name  string
	Root  string
	Nodes []NodeSpec
	Edges []EdgeSpec
}

// Builder converts the table into an equivalent Builder.
// A key declared twice is recorded as a problem and reported by Build.
func (t Table) Builder() *Builder {
	b := New(t.Name)
	for _, n := range t.Nodes {
		if _, dup := b.nodes[n.Key]; dup {
			b.errs = append(b.errs, fmt.Sprintf("duplicate key %q", n.Key))
			continue
		}
		b.Add(n.Key).Text(n.Text)
	}
	for _, e := range t.Edges {
		nb, ok := b.nodes[e.From]
		if !ok {
			b.errs = append(b.errs, fmt.Sprintf("%t edge leaves undeclared node %q", e.Label, e.From))
			continue
		}
		nb.Branch(e.Label, e.To)
	}
	if t.Root != "" {
		b.Root(t.Root)
	}
	return b
}

// Build compiles the table into an immutable tree.
func (t Table) Build() (*domain.Tree, error) {
	return t.Builder().Build()
}

// MustBuild is like Build but panics on a malformed table.
func (t Table) MustBuild() *domain.Tree {
	return t.Builder().MustBuild()
}
