package runtime

import (
	"context"
	"testing"

	"github.com/aretw0/crossroads/pkg/dsl"
	"github.com/aretw0/crossroads/pkg/madlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoryEngine(t *testing.T) *Engine {
	t.Helper()
	b := dsl.New("story")
	b.Add("start").Text("Did you {verb} a {adjective} {noun}?").Yes("yes").No("no")
	b.Add("yes").Text("THE END: the {noun} thanks you.")
	b.Add("no").Text("THE END: nothing happened.")
	return NewEngine(b.MustBuild())
}

func TestEngine_FillAndRender(t *testing.T) {
	engine := newStoryEngine(t)
	state := engine.Start(context.Background())

	pending, err := engine.PendingSlots(state)
	require.NoError(t, err)
	assert.Equal(t, []madlib.Placeholder{madlib.Noun, madlib.Verb, madlib.Adjective}, pending)

	words := map[madlib.Placeholder]string{
		madlib.Noun:      " fence ",
		madlib.Verb:      "jump",
		madlib.Adjective: "tall\n",
	}
	for _, p := range pending {
		state, err = engine.FillSlot(state, p, words[p])
		require.NoError(t, err)
	}

	pending, err = engine.PendingSlots(state)
	require.NoError(t, err)
	assert.Empty(t, pending)

	for i := 0; i < 3; i++ {
		content, err := engine.CurrentContent(state)
		require.NoError(t, err)
		assert.Equal(t, "Did you jump a tall fence?", content)
	}
}

func TestEngine_SlotsArePerNode(t *testing.T) {
	engine := newStoryEngine(t)
	ctx := context.Background()
	state := engine.Start(ctx)

	state, err := engine.FillSlot(state, madlib.Noun, "fence")
	require.NoError(t, err)
	state, err = engine.FillSlot(state, madlib.Verb, "jump")
	require.NoError(t, err)
	state, err = engine.FillSlot(state, madlib.Adjective, "tall")
	require.NoError(t, err)

	state, err = engine.Advance(ctx, state, true)
	require.NoError(t, err)

	pending, err := engine.PendingSlots(state)
	require.NoError(t, err)
	assert.Equal(t, []madlib.Placeholder{madlib.Noun}, pending, "a new node asks for its own words")
}

func TestEngine_FillSlotRejectsNonPending(t *testing.T) {
	engine := newStoryEngine(t)
	state := engine.Start(context.Background())

	_, err := engine.FillSlot(state, madlib.Adverb, "quickly")
	assert.ErrorIs(t, err, ErrSlotNotPending, "adverb is not referenced")

	state, err = engine.FillSlot(state, madlib.Noun, "fence")
	require.NoError(t, err)
	_, err = engine.FillSlot(state, madlib.Noun, "wall")
	assert.ErrorIs(t, err, ErrSlotNotPending, "each slot is stored at most once")
}

func TestEngine_FillSlotDoesNotMutateInput(t *testing.T) {
	engine := newStoryEngine(t)
	state := engine.Start(context.Background())

	next, err := engine.FillSlot(state, madlib.Noun, "fence")
	require.NoError(t, err)

	assert.Nil(t, state.Slots)
	assert.Equal(t, "fence", next.SlotsFor(next.Current)[madlib.Noun])
}
