package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/crossroads/internal/presentation/tui"
	"github.com/aretw0/crossroads/pkg/catalog"
	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/runner"
)

// RunSession walks one tree interactively until a leaf is displayed or the user leaves.
func RunSession(ctx context.Context, opts RunOptions) error {
	stdin, stdout := opts.Stdin, opts.Stdout
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	logger := createLogger(opts.Debug, opts.JSON)

	tree, err := LoadTree(ctx, opts.Source)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}
	logger.Debug("tree loaded", "tree", tree.Name(), "nodes", tree.Len())

	// Banner and markdown rendering only make sense on a real terminal.
	interactive := !opts.quiet() && isTerminal(stdout)
	if interactive && !opts.NoBanner {
		tui.PrintBanner(stdout, tree.Name())
	}
	if !opts.quiet() && opts.Source.File == "" && opts.Source.Dir == "" {
		if intro := catalog.Intro(tree.Name()); intro != "" {
			fmt.Fprintln(stdout, intro)
		}
	}

	var metrics *runner.Metrics
	var hooks []domain.LifecycleHooks
	if opts.MetricsFile != "" {
		metrics = runner.NewMetrics()
		hooks = append(hooks, metrics.Hooks(tree.Name()))
	}
	engine := createEngine(tree, opts.Debug, logger, hooks...)

	sigCtx := watchInterrupts(ctx)
	defer sigCtx.Stop()

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(createHandler(opts, stdin, stdout, interactive)),
		runner.WithMetrics(metrics),
	)

	finalState, runErr := r.Run(sigCtx, engine, engine.Start(sigCtx))

	if !opts.quiet() {
		node, _ := tree.Node(finalState.Current)
		logCompletion(stdout, interactive, node.Label(), runErr, sigCtx.Signal())
	}

	if metrics != nil {
		if err := metrics.WriteFile(opts.MetricsFile); err != nil {
			logger.Warn("metrics not written", "path", opts.MetricsFile, "error", err)
			if runErr == nil {
				return err
			}
		}
	}

	return handleExecutionError(runErr)
}

func createHandler(opts RunOptions, stdin io.Reader, stdout io.Writer, interactive bool) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(stdin, stdout)
	}
	var handlerOpts []runner.TextHandlerOption
	if interactive {
		handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(tui.NewRenderer(tui.DefaultWordWrap)))
	}
	return runner.NewTextHandler(stdin, stdout, handlerOpts...)
}
