package crossroads

import (
	"context"
	"log/slog"

	"github.com/aretw0/crossroads/internal/logging"
	"github.com/aretw0/crossroads/internal/runtime"
	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/madlib"
)

// Engine is the high-level entry point for the Crossroads library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	tree    *domain.Tree
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine over a built tree.
// Trees come from the dsl package, the catalog or one of the adapters.
func New(tree *domain.Tree, opts ...Option) *Engine {
	eng := &Engine{
		tree: tree,
		Name: tree.Name(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	// Never hand the runtime a nil logger.
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("tree", eng.Name)
	}

	eng.runtime = runtime.NewEngine(tree,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)
	return eng
}

// Start creates the initial state at the root and triggers lifecycle hooks.
func (e *Engine) Start(ctx context.Context) domain.State {
	return e.runtime.Start(ctx)
}

// CurrentContent returns the display text of the current node, with fill-in words applied.
func (e *Engine) CurrentContent(state domain.State) (string, error) {
	return e.runtime.CurrentContent(state)
}

// IsTerminal reports whether the walk has reached a leaf.
func (e *Engine) IsTerminal(state domain.State) bool {
	return e.runtime.IsTerminal(state)
}

// Advance follows the edge labeled answer and returns the next state.
// Errors wrapping domain.ErrMalformedTree mean the tree is broken and the walk must stop.
func (e *Engine) Advance(ctx context.Context, state domain.State, answer bool) (domain.State, error) {
	return e.runtime.Advance(ctx, state, answer)
}

// PendingSlots lists the fill-in words the current node still needs.
func (e *Engine) PendingSlots(state domain.State) ([]madlib.Placeholder, error) {
	return e.runtime.PendingSlots(state)
}

// FillSlot stores a word for one pending placeholder of the current node.
func (e *Engine) FillSlot(state domain.State, p madlib.Placeholder, word string) (domain.State, error) {
	return e.runtime.FillSlot(state, p, word)
}

// Tree returns the tree the engine walks.
func (e *Engine) Tree() *domain.Tree {
	return e.tree
}

// Inspect returns every node of the tree for visualization or introspection tools.
func (e *Engine) Inspect() []domain.Node {
	return e.tree.Nodes()
}
