package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/crossroads/pkg/domain"
)

// GraphOverlay contains walk data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []domain.NodeID
	CurrentNode  domain.NodeID
}

// OverlayFromState highlights the path of a walk and its current node.
func OverlayFromState(state domain.State) *GraphOverlay {
	return &GraphOverlay{
		VisitedNodes: append([]domain.NodeID(nil), state.Path...),
		CurrentNode:  state.Current,
	}
}

// GenerateMermaid produces a Mermaid flowchart of the tree.
// It applies semantic styling:
// - Root: ((Circle))
// - Question: {Rhombus}
// - Leaf: ([Stadium])
// Edges are labeled yes/no. Overlay styles (Visited/Current) are applied if provided.
func GenerateMermaid(tree *domain.Tree, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range tree.Nodes() {
		opener, closer := "{", "}"
		switch {
		case node.ID == tree.Root() && !tree.IsLeaf(node.ID):
			opener, closer = "((", "))"
		case tree.IsLeaf(node.ID):
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", mermaidID(node), opener, escapeLabel(node.Text), closer))
	}

	for _, edge := range tree.Edges() {
		from, _ := tree.Node(edge.From)
		to, _ := tree.Node(edge.To)
		label := "no"
		if edge.Label {
			label = "yes"
		}
		sb.WriteString(fmt.Sprintf("    %s -- %s --> %s\n", mermaidID(from), label, mermaidID(to)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[domain.NodeID]bool)
		for _, id := range overlay.VisitedNodes {
			node, ok := tree.Node(id)
			if !ok || visited[id] || id == overlay.CurrentNode {
				continue
			}
			visited[id] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", mermaidID(node)))
		}

		if node, ok := tree.Node(overlay.CurrentNode); ok {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", mermaidID(node)))
		}
	}

	return sb.String()
}

func mermaidID(node domain.Node) string {
	if node.Key == "" {
		return fmt.Sprintf("n%d", node.ID)
	}
	return sanitizeMermaidID(node.Key)
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_").Replace(id)
}

func escapeLabel(text string) string {
	return strings.NewReplacer("\"", "#quot;", "\n", "<br/>").Replace(text)
}
