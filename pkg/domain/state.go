package domain

import (
	"github.com/aretw0/crossroads/pkg/madlib"
)

// State represents the snapshot of one walk over a Tree.
// It is a plain value: advancing produces a new State and never mutates the previous one.
type State struct {
	// Current is the handle of the active node.
	Current NodeID `json:"current"`

	// Steps counts the answers applied so far.
	Steps int `json:"steps"`

	// Path records every node visited, root first.
	Path []NodeID `json:"path"`

	// Answers records the answer given at each step.
	Answers []bool `json:"answers,omitempty"`

	// Slots holds the fill-in words collected per node.
	Slots map[NodeID]madlib.Slots `json:"slots,omitempty"`
}

// NewState creates a clean state positioned at start.
func NewState(start NodeID) State {
	return State{
		Current: start,
		Path:    []NodeID{start},
	}
}

// Clone returns a deep copy, safe to mutate independently.
func (s State) Clone() State {
	next := s
	next.Path = append([]NodeID(nil), s.Path...)
	next.Answers = append([]bool(nil), s.Answers...)
	if s.Slots != nil {
		next.Slots = make(map[NodeID]madlib.Slots, len(s.Slots))
		for id, slots := range s.Slots {
			next.Slots[id] = slots.Clone()
		}
	}
	return next
}

// SlotsFor returns the words collected for id (nil when none).
func (s State) SlotsFor(id NodeID) madlib.Slots {
	return s.Slots[id]
}
