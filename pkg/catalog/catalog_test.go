package catalog_test

import (
	"context"
	"testing"

	"github.com/aretw0/crossroads"
	"github.com/aretw0/crossroads/pkg/catalog"
	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"car", "madlib"}, catalog.Names())
}

func TestIntro(t *testing.T) {
	assert.Equal(t, catalog.MadLibIntro, catalog.Intro(catalog.MadLibName))
	assert.Empty(t, catalog.Intro(catalog.CarName))
	assert.Empty(t, catalog.Intro("boat"))
}

func TestGet_Unknown(t *testing.T) {
	_, err := catalog.Get("spaceship")
	assert.ErrorIs(t, err, catalog.ErrUnknownTree)
	assert.Contains(t, err.Error(), "car")
}

func TestCatalog_Structure(t *testing.T) {
	for _, name := range catalog.Names() {
		t.Run(name, func(t *testing.T) {
			tree, err := catalog.Get(name)
			require.NoError(t, err)

			assert.Equal(t, name, tree.Name())
			assert.True(t, tree.Acyclic(), "catalog trees must always terminate")
			assert.Len(t, tree.Reachable(), tree.Len(), "every node is reachable from the root")

			for _, node := range tree.Nodes() {
				degree := tree.OutDegree(node.ID)
				assert.Contains(t, []int{0, 2}, degree, "node %s", node.Label())
				if degree == 2 {
					yes, _ := tree.Target(node.ID, true)
					no, _ := tree.Target(node.ID, false)
					assert.NotEqual(t, yes, no, "node %s", node.Label())
				}
			}
		})
	}
}

// walkAll explores every answer sequence and returns the leaf keys reached.
func walkAll(t *testing.T, engine *crossroads.Engine, state domain.State, leaves map[string]int) {
	t.Helper()
	ctx := context.Background()
	if engine.IsTerminal(state) {
		node, _ := engine.Tree().Node(state.Current)
		leaves[node.Key]++
		return
	}
	for _, answer := range []bool{true, false} {
		next, err := engine.Advance(ctx, state, answer)
		require.NoError(t, err)
		walkAll(t, engine, next, leaves)
	}
}

func TestCar_EveryPathEndsAtALeaf(t *testing.T) {
	engine := crossroads.New(catalog.CarTroubleshooting())
	leaves := map[string]int{}
	walkAll(t, engine, engine.Start(context.Background()), leaves)

	assert.Equal(t, map[string]int{
		"clean-terminals": 1,
		"replace-cables":  1,
		"replace-battery": 1,
		"spark-plugs":     1,
		"mechanic":        1,
		"choke":           1,
		"service":         1,
	}, leaves)
}

func TestCar_SilentAndCorroded(t *testing.T) {
	engine := crossroads.New(catalog.CarTroubleshooting())
	ctx := context.Background()

	state := engine.Start(ctx)
	content, err := engine.CurrentContent(state)
	require.NoError(t, err)
	assert.Equal(t, "Is the car silent when you turn the key?", content)

	state, err = engine.Advance(ctx, state, true)
	require.NoError(t, err)
	content, err = engine.CurrentContent(state)
	require.NoError(t, err)
	assert.Equal(t, "Are the battery terminals corroded?", content)
	assert.False(t, engine.IsTerminal(state))

	state, err = engine.Advance(ctx, state, true)
	require.NoError(t, err)
	content, err = engine.CurrentContent(state)
	require.NoError(t, err)
	assert.Equal(t, "Clean terminals and try starting again.", content)
	assert.True(t, engine.IsTerminal(state))
}

func TestCar_FuelInjection(t *testing.T) {
	engine := crossroads.New(catalog.CarTroubleshooting())
	ctx := context.Background()

	state := engine.Start(ctx)
	var err error
	for _, answer := range []bool{false, false, false, true, true} {
		state, err = engine.Advance(ctx, state, answer)
		require.NoError(t, err)
	}

	content, err := engine.CurrentContent(state)
	require.NoError(t, err)
	assert.Equal(t, "Get it in for service.", content)
	assert.True(t, engine.IsTerminal(state))
}

func TestMadLib_SharedEndings(t *testing.T) {
	engine := crossroads.New(catalog.MadLibAdventure())
	leaves := map[string]int{}
	walkAll(t, engine, engine.Start(context.Background()), leaves)

	assert.Len(t, leaves, 6)
	total := 0
	for _, n := range leaves {
		total += n
	}
	assert.Equal(t, 16, total, "four levels of questions give sixteen walks")
	assert.Greater(t, leaves["wishes"], 1, "endings are shared between branches")
}

func TestMadLib_EveryQuestionAsksForWords(t *testing.T) {
	tree := catalog.MadLibAdventure()
	engine := crossroads.New(tree)

	for _, node := range tree.Nodes() {
		if tree.IsLeaf(node.ID) {
			continue
		}
		pending, err := engine.PendingSlots(domain.NewState(node.ID))
		require.NoError(t, err)
		assert.NotEmpty(t, pending, "node %s", node.Label())
	}
}
