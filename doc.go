/*
Package crossroads walks binary decision trees: every inner node asks a yes/no
question, every leaf is an outcome.

A tree is built once (from the dsl package, the catalog, a YAML document or a
directory of Markdown files) and is immutable afterwards. Walks are plain
domain.State values, so any number of them can share one Engine.

# Concept

The engine performs no I/O. The host renders CurrentContent, collects an answer
and calls Advance until IsTerminal holds, then renders the leaf once more.
Nodes may embed fill-in placeholders ({noun}, {verb}, {adjective}, {adverb});
the host collects words with PendingSlots and FillSlot before rendering.

A missing edge is never a user error. Advance reports it as a
*domain.MissingEdgeError wrapping domain.ErrMalformedTree and the walk must stop.

# Usage

	tree := catalog.CarTroubleshooting()
	eng := crossroads.New(tree)

	ctx := context.Background()
	state := eng.Start(ctx)
	for !eng.IsTerminal(state) {
		question, _ := eng.CurrentContent(state)
		answer := ask(question) // host policy
		state, err = eng.Advance(ctx, state, answer)
		if err != nil {
			log.Fatal(err)
		}
	}
	outcome, _ := eng.CurrentContent(state)
	fmt.Println(outcome)

The pkg/runner package provides a ready-made interactive driver for terminals
and NDJSON pipes.
*/
package crossroads
