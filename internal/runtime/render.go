package runtime

import (
	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/madlib"
)

// CurrentContent returns the display text of the current node with the words
// collected for that node substituted. It has no side effects.
func (e *Engine) CurrentContent(state domain.State) (string, error) {
	node, err := e.currentNode(state)
	if err != nil {
		return "", err
	}
	return madlib.Render(node.Text, state.SlotsFor(node.ID)), nil
}
