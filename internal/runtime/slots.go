package runtime

import (
	"errors"
	"fmt"

	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/madlib"
)

// ErrSlotNotPending is returned when filling a slot the current node does not
// reference or that already holds a word.
var ErrSlotNotPending = errors.New("slot is not pending")

// PendingSlots lists the placeholders the current node references that have no word yet.
// Drivers request these before displaying the node.
func (e *Engine) PendingSlots(state domain.State) ([]madlib.Placeholder, error) {
	node, err := e.currentNode(state)
	if err != nil {
		return nil, err
	}
	return madlib.Missing(node.Text, state.SlotsFor(node.ID)), nil
}

// FillSlot stores a word for a pending placeholder of the current node.
// Each placeholder is stored at most once per node; the word is trimmed but not validated.
func (e *Engine) FillSlot(state domain.State, p madlib.Placeholder, word string) (domain.State, error) {
	pending, err := e.PendingSlots(state)
	if err != nil {
		return state, err
	}

	found := false
	for _, candidate := range pending {
		if candidate == p {
			found = true
			break
		}
	}
	if !found {
		return state, fmt.Errorf("%w: %s at node #%d", ErrSlotNotPending, p, state.Current)
	}

	next := state.Clone()
	if next.Slots == nil {
		next.Slots = make(map[domain.NodeID]madlib.Slots)
	}
	slots := next.Slots[state.Current]
	if slots == nil {
		slots = make(madlib.Slots)
		next.Slots[state.Current] = slots
	}
	slots[p] = madlib.Normalize(word)

	e.logger.Debug("slot filled", "node", state.Current, "slot", string(p))
	return next, nil
}
