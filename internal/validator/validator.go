package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/madlib"
)

var braceToken = regexp.MustCompile(`\{[A-Za-z_]+\}`)

// Report summarizes a tree that passed construction.
type Report struct {
	Tree      string
	Nodes     int
	Questions int
	Leaves    int
	Depth     int

	// Errors make a tree unfit to walk. Only cycles qualify.
	Errors []string
	// Warnings flag likely authoring mistakes: unreachable nodes and unknown placeholders.
	Warnings []string
}

// ValidateTree crawls the tree from its root and reports unreachable nodes,
// cycles and brace tokens that are not fill-in placeholders.
func ValidateTree(tree *domain.Tree) Report {
	report := Report{
		Tree:   tree.Name(),
		Nodes:  tree.Len(),
		Leaves: len(tree.Leaves()),
		Depth:  tree.Depth(),
	}
	report.Questions = report.Nodes - report.Leaves

	reachable := make(map[domain.NodeID]bool)
	for _, id := range tree.Reachable() {
		reachable[id] = true
	}

	for _, node := range tree.Nodes() {
		if !reachable[node.ID] {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Unreachable node: '%s'", node.Label()))
		}
		for _, token := range braceToken.FindAllString(node.Text, -1) {
			if !madlib.Placeholder(strings.Trim(token, "{}")).Valid() {
				report.Warnings = append(report.Warnings, fmt.Sprintf("Unknown placeholder %s in '%s'", token, node.Label()))
			}
		}
	}

	if !tree.Acyclic() {
		report.Errors = append(report.Errors, "Cycle detected: some walks never reach a leaf")
	}

	return report
}

// Err returns the errors of the report as one error, or nil.
func (r Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("found %d errors:\n- %s", len(r.Errors), strings.Join(r.Errors, "\n- "))
}
