/*
Package dsl provides the Tree Builder: two equivalent ways of declaring a decision tree
in Go and compiling it into an immutable domain.Tree.

The fluent builder:

	b := dsl.New("car")
	b.Add("silent").Text("Is the car silent when you turn the key?").Yes("corroded").No("clicking")
	b.Add("corroded").Text("Are the battery terminals corroded?").Yes("clean").No("cables")
	...
	tree, err := b.Build()

The literal table, preferred for hard-coded topologies:

	tree := dsl.Table{
		Name:  "car",
		Nodes: []dsl.NodeSpec{{Key: "silent", Text: "Is the car silent..."}, ...},
		Edges: []dsl.EdgeSpec{{From: "silent", To: "corroded", Label: true}, ...},
	}.MustBuild()

Build checks the topology at construction time: every edge must reference a declared
node, no node may carry two edges with the same label, and every non-terminal node
must have both a yes and a no branch.
*/
package dsl
