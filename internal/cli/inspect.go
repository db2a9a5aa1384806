package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/crossroads"
	"github.com/aretw0/crossroads/internal/presentation/graph"
	"github.com/aretw0/crossroads/internal/validator"
	"github.com/aretw0/crossroads/pkg/adapters/hcltree"
	"github.com/aretw0/crossroads/pkg/adapters/loam"
	"github.com/aretw0/crossroads/pkg/adapters/yamltree"
	"github.com/aretw0/crossroads/pkg/catalog"
	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/runner"
)

// ListTrees prints the built-in trees with their size.
func ListTrees(w io.Writer) error {
	for _, name := range catalog.Names() {
		tree, err := catalog.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-8s %2d nodes, %2d leaves\n", name, tree.Len(), len(tree.Leaves()))
	}
	return nil
}

// Graph prints the Mermaid diagram of a tree. When answers are given they are
// walked from the root and highlighted.
func Graph(ctx context.Context, w io.Writer, src TreeSource, answers []string) error {
	tree, err := LoadTree(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}

	var overlay *graph.GraphOverlay
	if len(answers) > 0 {
		state, err := walk(ctx, tree, answers)
		if err != nil {
			return err
		}
		overlay = graph.OverlayFromState(state)
	}

	_, err = fmt.Fprint(w, graph.GenerateMermaid(tree, overlay))
	return err
}

// ErrPathPastLeaf is returned when --path has more answers than the walk has questions.
var ErrPathPastLeaf = errors.New("path continues past leaf")

func walk(ctx context.Context, tree *domain.Tree, answers []string) (domain.State, error) {
	engine := crossroads.New(tree)
	state := engine.Start(ctx)
	for i, raw := range answers {
		if engine.IsTerminal(state) {
			leaf, _ := tree.Node(state.Current)
			return state, fmt.Errorf("answer %d: %w %s", i+1, ErrPathPastLeaf, leaf.Label())
		}
		answer, err := runner.ParseAnswer(raw)
		if err != nil {
			return state, fmt.Errorf("answer %d: %w", i+1, err)
		}
		state, err = engine.Advance(ctx, state, answer)
		if err != nil {
			return state, fmt.Errorf("answer %d: %w", i+1, err)
		}
	}
	return state, nil
}

// ErrUnknownFormat is returned by Export for formats other than yaml and hcl.
var ErrUnknownFormat = errors.New("unknown export format")

// Export prints a tree in a format that --file accepts: "yaml" (default) or "hcl".
func Export(ctx context.Context, w io.Writer, src TreeSource, format string) error {
	tree, err := LoadTree(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}

	var data []byte
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		data, err = yamltree.Marshal(tree)
		if err != nil {
			return err
		}
	case "hcl":
		data = hcltree.Marshal(tree)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	_, err = w.Write(data)
	return err
}

// ExportDir writes a tree into dir as Markdown node documents that --dir accepts.
func ExportDir(ctx context.Context, src TreeSource, dir string) error {
	tree, err := LoadTree(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}
	return loam.Create(ctx, dir, tree)
}

// Validate loads a tree, prints its summary and warnings, and fails on errors.
func Validate(ctx context.Context, w io.Writer, src TreeSource) error {
	tree, err := LoadTree(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}

	report := validator.ValidateTree(tree)
	fmt.Fprintf(w, "Tree %q: %d nodes (%d questions, %d leaves)", report.Tree, report.Nodes, report.Questions, report.Leaves)
	if report.Depth >= 0 {
		fmt.Fprintf(w, ", depth %d", report.Depth)
	}
	fmt.Fprintln(w)

	if len(report.Warnings) > 0 {
		fmt.Fprintf(w, "Warnings:\n- %s\n", strings.Join(report.Warnings, "\n- "))
	}
	return report.Err()
}
