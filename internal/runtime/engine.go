package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/crossroads/internal/logging"
	"github.com/aretw0/crossroads/pkg/domain"
)

// Engine walks a decision tree one answer at a time.
// It performs no I/O: callers render content, collect answers and call Advance.
// The engine holds no per-walk data, so one Engine may serve any number of walks.
type Engine struct {
	tree   *domain.Tree
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine over an immutable tree.
func NewEngine(tree *domain.Tree, opts ...EngineOption) *Engine {
	e := &Engine{
		tree:   tree,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tree returns the tree the engine walks.
func (e *Engine) Tree() *domain.Tree {
	return e.tree
}

// Start creates the initial state positioned at the root.
func (e *Engine) Start(ctx context.Context) domain.State {
	state := domain.NewState(e.tree.Root())
	if node, ok := e.tree.Node(state.Current); ok {
		e.emitNodeEnter(ctx, node)
	}
	e.logger.Debug("walk started", "tree", e.tree.Name(), "root", state.Current)
	return state
}

// IsTerminal reports whether the current node has no outgoing edges.
func (e *Engine) IsTerminal(state domain.State) bool {
	return e.tree.IsLeaf(state.Current)
}

// Advance follows the edge of the current node labeled answer and returns the new state.
// The given state is left untouched.
//
// A missing edge is a defect of the tree, never of the input: it is reported as a
// *domain.MissingEdgeError (wrapping domain.ErrMalformedTree) and the walk must stop.
func (e *Engine) Advance(ctx context.Context, state domain.State, answer bool) (domain.State, error) {
	node, err := e.currentNode(state)
	if err != nil {
		return state, err
	}

	target, ok := e.tree.Target(node.ID, answer)
	if !ok {
		missing := &domain.MissingEdgeError{Node: node, Label: answer}
		e.logger.Error("no matching edge", "tree", e.tree.Name(), "node", node.Label(), "answer", answer, "err", missing)
		return state, missing
	}

	next := state.Clone()
	next.Current = target
	next.Steps++
	next.Path = append(next.Path, target)
	next.Answers = append(next.Answers, answer)

	e.emitNodeLeave(ctx, node)
	e.emitAnswer(ctx, node.ID, answer, target)
	if targetNode, ok := e.tree.Node(target); ok {
		e.emitNodeEnter(ctx, targetNode)
	}

	e.logger.Debug("advanced", "from", node.Label(), "answer", answer, "to", target, "steps", next.Steps)
	return next, nil
}

func (e *Engine) currentNode(state domain.State) (domain.Node, error) {
	node, ok := e.tree.Node(state.Current)
	if !ok {
		return domain.Node{}, fmt.Errorf("%w: #%d in tree %q", domain.ErrNodeNotFound, state.Current, e.tree.Name())
	}
	return node, nil
}
