/*
Package runner implements the interactive session loop around a crossroads Engine.

The runner is the bridge between the walk (which performs no I/O) and the user.
It collects fill-in words, displays node content, parses yes/no answers and
re-prompts on anything else, stopping once a leaf has been displayed.

# Key Components

  - Runner: the loop. It returns the final state, ErrAbandoned when input runs
    out, or the engine error when the tree is malformed.
  - IOHandler: decouples how the session talks to the user.
  - TextHandler: line-based terminal IO with an optional markdown renderer.
  - JSONHandler: NDJSON events for programs driving a session.
  - Metrics: Prometheus counters written as a textfile at the end of a session.

# Usage

	eng := crossroads.New(catalog.CarTroubleshooting())
	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if _, err := r.Run(ctx, eng, eng.Start(ctx)); err != nil && !errors.Is(err, runner.ErrAbandoned) {
		log.Fatal(err)
	}
*/
package runner
