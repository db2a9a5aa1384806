package loam

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/dsl"
	"github.com/aretw0/loam"
)

// DefaultRoot is the key used as root when no document sets `root: true`.
const DefaultRoot = "start"

// ErrNoRoot is returned when no document can serve as the root.
var ErrNoRoot = errors.New("no root node")

// Loader adapts a Loam repository of Markdown node documents into a tree.
// Each document is one node: the body is the node text, the frontmatter names the
// yes/no targets.
type Loader struct {
	Repo *loam.TypedRepository[NodeMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[NodeMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps scalar types consistent across Markdown and JSON documents.
	// ReadOnly avoids Loam's sandbox behavior: trees are never written back.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[NodeMetadata](repo)), nil
}

type nodeDoc struct {
	key  string
	text string
	meta NodeMetadata
}

// ListNodes lists all node keys in the repository, sorted.
func (l *Loader) ListNodes(ctx context.Context) ([]string, error) {
	docs, err := l.documents(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(docs))
	for _, d := range docs {
		keys = append(keys, d.key)
	}
	return keys, nil
}

// Load reads every document and builds the tree called name.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Tree, error) {
	docs, err := l.documents(ctx)
	if err != nil {
		return nil, err
	}

	root, err := pickRoot(docs)
	if err != nil {
		return nil, err
	}

	b := dsl.New(name)
	for _, d := range docs {
		nb := b.Add(d.key).Text(d.text)
		if d.meta.Yes != "" {
			nb.Yes(trimExtension(d.meta.Yes))
		}
		if d.meta.No != "" {
			nb.No(trimExtension(d.meta.No))
		}
	}
	b.Root(root)

	return b.Build()
}

func (l *Loader) documents(ctx context.Context) ([]nodeDoc, error) {
	listed, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	docs := make([]nodeDoc, 0, len(listed))

	for _, entry := range listed {
		doc, err := l.Repo.Get(ctx, entry.ID)
		if err != nil {
			return nil, fmt.Errorf("loam get failed for %s: %w", entry.ID, err)
		}

		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		key := trimExtension(rawID)

		if existingPath, ok := seen[key]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", key, existingPath, doc.ID)
		}
		seen[key] = doc.ID

		docs = append(docs, nodeDoc{
			key:  key,
			text: strings.TrimSpace(doc.Content),
			meta: doc.Data,
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].key < docs[j].key })
	return docs, nil
}

func pickRoot(docs []nodeDoc) (string, error) {
	var marked []string
	hasDefault := false
	for _, d := range docs {
		if d.meta.Root {
			marked = append(marked, d.key)
		}
		if d.key == DefaultRoot {
			hasDefault = true
		}
	}

	switch {
	case len(marked) == 1:
		return marked[0], nil
	case len(marked) > 1:
		return "", fmt.Errorf("%w: %d documents set root: %s", domain.ErrMalformedTree, len(marked), strings.Join(marked, ", "))
	case hasDefault:
		return DefaultRoot, nil
	default:
		return "", fmt.Errorf("%w: mark one document with `root: true` or name it %q", ErrNoRoot, DefaultRoot)
	}
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
