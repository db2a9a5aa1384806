package loam

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"gopkg.in/yaml.v3"
)

// frontmatter mirrors NodeMetadata with the YAML keys written to disk.
type frontmatter struct {
	ID   string `yaml:"id"`
	Yes  string `yaml:"yes,omitempty"`
	No   string `yaml:"no,omitempty"`
	Root bool   `yaml:"root,omitempty"`
}

// Write stores every node of tree as a Markdown document in repo.
// Reading the repository back with Loader.Load yields an equivalent tree.
func Write(ctx context.Context, repo core.Repository, tree *domain.Tree) error {
	for _, node := range tree.Nodes() {
		fm := frontmatter{
			ID:   node.Label(),
			Root: node.ID == tree.Root(),
		}
		if to, ok := tree.Target(node.ID, true); ok {
			target, _ := tree.Node(to)
			fm.Yes = target.Label()
		}
		if to, ok := tree.Target(node.ID, false); ok {
			target, _ := tree.Node(to)
			fm.No = target.Label()
		}

		header, err := yaml.Marshal(fm)
		if err != nil {
			return fmt.Errorf("failed to encode frontmatter for %s: %w", node.Label(), err)
		}

		doc := core.Document{
			ID:      node.Label() + ".md",
			Content: fmt.Sprintf("---\n%s---\n%s\n", header, node.Text),
		}
		if err := repo.Save(ctx, doc); err != nil {
			return fmt.Errorf("loam save failed for %s: %w", doc.ID, err)
		}
	}
	return nil
}

// Create initializes a writable Loam repository at dir and writes tree into it.
func Create(ctx context.Context, dir string, tree *domain.Tree) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", absPath, err)
	}
	repo, err := loam.Init(absPath, loam.WithVersioning(false))
	if err != nil {
		return fmt.Errorf("failed to initialize loam: %w", err)
	}
	return Write(ctx, repo, tree)
}
