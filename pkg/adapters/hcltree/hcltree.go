// Package hcltree reads and writes decision trees as HCL files.
//
//	name = "car"
//	root = "silent"
//
//	node "silent" {
//	  text = "Is the car silent when you turn the key?"
//	  yes  = "corroded"
//	  no   = "clicking"
//	}
//
//	node "corroded" {
//	  text = "Clean terminals and try starting again."
//	}
package hcltree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/dsl"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// treeFile is the top-level structure of a tree file for decoding.
type treeFile struct {
	Name  string      `hcl:"name,optional"`
	Root  string      `hcl:"root,optional"`
	Nodes []nodeBlock `hcl:"node,block"`
}

type nodeBlock struct {
	Key  string `hcl:"key,label"`
	Text string `hcl:"text"`
	Yes  string `hcl:"yes,optional"`
	No   string `hcl:"no,optional"`
}

// Parse decodes HCL source into a tree. filename is used in diagnostics and,
// when the file declares no name, as the tree name.
func Parse(src []byte, filename string) (*domain.Tree, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(file, filename)
}

// LoadFile reads an HCL tree from path.
func LoadFile(path string) (*domain.Tree, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(file, path)
}

func decode(file *hcl.File, filename string) (*domain.Tree, error) {
	var parsed treeFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	if parsed.Name == "" {
		base := filepath.Base(filename)
		parsed.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	table := dsl.Table{Name: parsed.Name, Root: parsed.Root}
	for _, n := range parsed.Nodes {
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

// Marshal encodes a tree as HCL, one node block per node.
func Marshal(tree *domain.Tree) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.SetAttributeValue("name", cty.StringVal(tree.Name()))
	if root, ok := tree.Node(tree.Root()); ok {
		body.SetAttributeValue("root", cty.StringVal(root.Label()))
	}

	for _, node := range tree.Nodes() {
		body.AppendNewline()
		block := body.AppendNewBlock("node", []string{node.Label()}).Body()
		block.SetAttributeValue("text", cty.StringVal(node.Text))
		if to, ok := tree.Target(node.ID, true); ok {
			target, _ := tree.Node(to)
			block.SetAttributeValue("yes", cty.StringVal(target.Label()))
		}
		if to, ok := tree.Target(node.ID, false); ok {
			target, _ := tree.Node(to)
			block.SetAttributeValue("no", cty.StringVal(target.Label()))
		}
	}
	return f.Bytes()
}
