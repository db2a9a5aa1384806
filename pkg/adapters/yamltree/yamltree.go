// Package yamltree reads and writes decision trees as YAML documents.
//
//	name: car
//	root: silent
//	nodes:
//	  - key: silent
//	    text: Is the car silent when you turn the key?
//	    yes: corroded
//	    no: clicking
//	  - key: corroded
//	    text: Clean terminals and try starting again.
package yamltree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/dsl"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned when the document does not match the expected shape.
var ErrInvalidDocument = errors.New("invalid tree document")

// Document is the YAML shape of a tree.
type Document struct {
	Name  string         `yaml:"name,omitempty" mapstructure:"name"`
	Root  string         `yaml:"root,omitempty" mapstructure:"root"`
	Nodes []NodeDocument `yaml:"nodes" mapstructure:"nodes"`
}

// NodeDocument is the YAML shape of one node.
type NodeDocument struct {
	Key  string `yaml:"key" mapstructure:"key"`
	Text string `yaml:"text" mapstructure:"text"`
	Yes  string `yaml:"yes,omitempty" mapstructure:"yes"`
	No   string `yaml:"no,omitempty" mapstructure:"no"`
}

// Parse decodes a YAML document into a tree.
func Parse(data []byte) (*domain.Tree, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// Decode parses the raw YAML into a Document.
// Unknown keys are rejected so typos in edge names surface early.
func Decode(data []byte) (Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if raw == nil {
		return Document{}, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Document{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// Build compiles the document into a tree.
func (d Document) Build() (*domain.Tree, error) {
	table := dsl.Table{Name: d.Name, Root: d.Root}
	for i, n := range d.Nodes {
		if n.Key == "" {
			return nil, fmt.Errorf("%w: node %d has no key", ErrInvalidDocument, i)
		}
		table.Nodes = append(table.Nodes, dsl.NodeSpec{Key: n.Key, Text: n.Text})
		if n.Yes != "" {
			table.Edges = append(table.Edges, dsl.EdgeSpec{From: n.Key, To: n.Yes, Label: true})
		}
		if n.No != "" {
			table.Edges = append(table.Edges, dsl.EdgeSpec{From: n.Key, To: n.No, Label: false})
		}
	}
	return table.Build()
}

// LoadFile reads a YAML tree from path. The file name is used when the document has no name.
func LoadFile(path string) (*domain.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		base := filepath.Base(path)
		doc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return doc.Build()
}

// FromTree converts a tree back into its document form.
func FromTree(tree *domain.Tree) Document {
	doc := Document{Name: tree.Name()}
	if root, ok := tree.Node(tree.Root()); ok {
		doc.Root = root.Label()
	}
	for _, node := range tree.Nodes() {
		nd := NodeDocument{Key: node.Label(), Text: node.Text}
		if to, ok := tree.Target(node.ID, true); ok {
			target, _ := tree.Node(to)
			nd.Yes = target.Label()
		}
		if to, ok := tree.Target(node.ID, false); ok {
			target, _ := tree.Node(to)
			nd.No = target.Label()
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	return doc
}

// Marshal encodes a tree as YAML.
func Marshal(tree *domain.Tree) ([]byte, error) {
	return yaml.Marshal(FromTree(tree))
}
