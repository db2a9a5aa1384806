package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/crossroads"
	"github.com/aretw0/crossroads/pkg/adapters/hcltree"
	"github.com/aretw0/crossroads/pkg/adapters/loam"
	"github.com/aretw0/crossroads/pkg/adapters/yamltree"
	"github.com/aretw0/crossroads/pkg/catalog"
	"github.com/aretw0/crossroads/pkg/domain"
)

// ErrAmbiguousSource is returned when more than one tree source is given.
var ErrAmbiguousSource = errors.New("use only one of --tree, --file and --dir")

// LoadTree resolves a source into a built tree. An empty source loads DefaultTree.
func LoadTree(ctx context.Context, src TreeSource) (*domain.Tree, error) {
	set := 0
	for _, v := range []string{src.Name, src.File, src.Dir} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return nil, ErrAmbiguousSource
	}

	switch {
	case src.File != "" && strings.EqualFold(filepath.Ext(src.File), ".hcl"):
		return hcltree.LoadFile(src.File)
	case src.File != "":
		return yamltree.LoadFile(src.File)
	case src.Dir != "":
		loader, err := loam.Open(src.Dir)
		if err != nil {
			return nil, err
		}
		absPath, err := filepath.Abs(src.Dir)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		return loader.Load(ctx, filepath.Base(absPath))
	case src.Name != "":
		return catalog.Get(src.Name)
	default:
		return catalog.Get(DefaultTree)
	}
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(tree *domain.Tree, debug bool, logger *slog.Logger, hooks ...domain.LifecycleHooks) *crossroads.Engine {
	if debug {
		hooks = append(hooks, createDebugHooks(logger))
	}
	return crossroads.New(tree,
		crossroads.WithLogger(logger),
		crossroads.WithLifecycleHooks(chainHooks(hooks...)),
	)
}

// chainHooks calls every set of hooks in order.
func chainHooks(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	var chained domain.LifecycleHooks
	for _, h := range all {
		h := h
		if h.OnNodeEnter != nil {
			prev := chained.OnNodeEnter
			chained.OnNodeEnter = func(ctx context.Context, e *domain.NodeEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnNodeEnter(ctx, e)
			}
		}
		if h.OnNodeLeave != nil {
			prev := chained.OnNodeLeave
			chained.OnNodeLeave = func(ctx context.Context, e *domain.NodeEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnNodeLeave(ctx, e)
			}
		}
		if h.OnAnswer != nil {
			prev := chained.OnAnswer
			chained.OnAnswer = func(ctx context.Context, e *domain.AnswerEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnAnswer(ctx, e)
			}
		}
	}
	return chained
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Enter Node", "node_id", e.NodeID, "key", e.Key, "terminal", e.Terminal)
		},
		OnNodeLeave: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Leave Node", "node_id", e.NodeID, "key", e.Key)
		},
		OnAnswer: func(ctx context.Context, e *domain.AnswerEvent) {
			logger.Debug("Answer", "node_id", e.NodeID, "answer", e.Answer, "target", e.Target)
		},
	}
}
