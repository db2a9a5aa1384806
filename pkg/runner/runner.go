package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/crossroads/internal/logging"
	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/madlib"
	"github.com/google/uuid"
)

// ErrAbandoned is returned when the session ends before reaching a leaf because
// input ran out or the context was cancelled. It wraps the cause.
var ErrAbandoned = errors.New("session abandoned")

// Engine is the walk API the Runner drives. *crossroads.Engine satisfies it.
type Engine interface {
	Tree() *domain.Tree
	CurrentContent(state domain.State) (string, error)
	IsTerminal(state domain.State) bool
	Advance(ctx context.Context, state domain.State, answer bool) (domain.State, error)
	PendingSlots(state domain.State) ([]madlib.Placeholder, error)
	FillSlot(state domain.State, p madlib.Placeholder, word string) (domain.State, error)
}

// Runner handles the interactive loop over an Engine using an IOHandler strategy
// to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *Metrics

	// SessionID tags every frame and log line of this runner.
	SessionID string
}

// NewRunner creates a Runner; without options it talks to Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	if r.SessionID == "" {
		r.SessionID = uuid.NewString()
	}
	r.Logger = r.Logger.With("session", r.SessionID)
	return r
}

// Run drives the walk from state until a leaf is displayed.
//
// Each iteration collects the fill-in words the current node needs, displays its
// content and, unless the node is a leaf, asks for a yes/no answer until one is
// recognized. A leaf is displayed once and never followed by a question.
//
// The returned state is the last one reached. Errors wrapping ErrAbandoned mean
// the user left early; errors wrapping domain.ErrMalformedTree mean the tree is broken.
func (r *Runner) Run(ctx context.Context, engine Engine, state domain.State) (domain.State, error) {
	tree := engine.Tree().Name()

	for {
		var err error
		state, err = r.fillSlots(ctx, engine, state)
		if err != nil {
			return state, err
		}

		content, err := engine.CurrentContent(state)
		if err != nil {
			return state, fmt.Errorf("render error: %w", err)
		}

		node, _ := engine.Tree().Node(state.Current)
		terminal := engine.IsTerminal(state)
		frame := Frame{
			Session:  r.SessionID,
			Tree:     tree,
			Node:     node.Label(),
			Content:  content,
			Terminal: terminal,
			Step:     state.Steps,
		}
		if err := r.Handler.Output(ctx, frame); err != nil {
			return state, fmt.Errorf("output error: %w", err)
		}

		if terminal {
			r.Logger.Debug("leaf reached", "tree", tree, "node", frame.Node, "steps", state.Steps)
			r.Metrics.sessionCompleted(tree, frame.Node)
			return state, nil
		}

		answer, err := r.askAnswer(ctx, tree)
		if err != nil {
			return state, err
		}

		state, err = engine.Advance(ctx, state, answer)
		if err != nil {
			return state, err
		}
	}
}

func (r *Runner) fillSlots(ctx context.Context, engine Engine, state domain.State) (domain.State, error) {
	pending, err := engine.PendingSlots(state)
	if err != nil {
		return state, err
	}

	tree := engine.Tree().Name()
	for _, p := range pending {
		word, err := r.askWord(ctx, tree, p)
		if err != nil {
			return state, err
		}
		state, err = engine.FillSlot(state, p, word)
		if err != nil {
			return state, err
		}
		r.Metrics.slotFilled(tree, string(p))
	}
	return state, nil
}

func (r *Runner) askWord(ctx context.Context, tree string, p madlib.Placeholder) (string, error) {
	prompt := WordPrompt(p)
	for {
		word, err := r.ask(ctx, tree, prompt)
		if err != nil {
			return "", err
		}
		if word != "" {
			return word, nil
		}
		if err := r.retry(ctx, tree, prompt.Kind, EmptyWordMessage); err != nil {
			return "", err
		}
	}
}

func (r *Runner) askAnswer(ctx context.Context, tree string) (bool, error) {
	prompt := Prompt{Kind: PromptAnswer, Text: AnswerPrompt}
	for {
		line, err := r.ask(ctx, tree, prompt)
		if err != nil {
			return false, err
		}
		answer, err := ParseAnswer(line)
		if err == nil {
			return answer, nil
		}
		r.Logger.Debug("answer rejected", "tree", tree, "input", line)
		if err := r.retry(ctx, tree, prompt.Kind, InvalidAnswerMessage); err != nil {
			return false, err
		}
	}
}

// ask reads one line, asking again after rejected input and turning
// exhausted input into ErrAbandoned.
func (r *Runner) ask(ctx context.Context, tree string, prompt Prompt) (string, error) {
	for {
		line, err := r.Handler.Ask(ctx, prompt)
		switch {
		case err == nil:
			return line, nil
		case errors.Is(err, ErrInputTooLarge), errors.Is(err, ErrInvalidUTF8):
			if err := r.retry(ctx, tree, prompt.Kind, fmt.Sprintf("Error: %v. Please try again.", err)); err != nil {
				return "", err
			}
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			r.Logger.Debug("session abandoned", "tree", tree, "cause", err)
			return "", fmt.Errorf("%w: %w", ErrAbandoned, err)
		default:
			return "", fmt.Errorf("input error: %w", err)
		}
	}
}

func (r *Runner) retry(ctx context.Context, tree string, kind PromptKind, msg string) error {
	r.Metrics.reprompt(tree, kind)
	if err := r.Handler.SystemOutput(ctx, msg); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}
