package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter EventType = "node_enter"
	EventNodeLeave EventType = "node_leave"
	EventAnswer    EventType = "answer"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NodeEvent represents entry or exit from a node.
type NodeEvent struct {
	EventBase
	NodeID   NodeID `json:"node_id"`
	Key      string `json:"key,omitempty"`
	Terminal bool   `json:"terminal"`
}

// AnswerEvent represents an answer applied to a node.
type AnswerEvent struct {
	EventBase
	NodeID NodeID `json:"node_id"`
	Answer bool   `json:"answer"`
	Target NodeID `json:"target"`
}

// LifecycleHooks defines callbacks for walk observability.
type LifecycleHooks struct {
	OnNodeEnter func(context.Context, *NodeEvent)
	OnNodeLeave func(context.Context, *NodeEvent)
	OnAnswer    func(context.Context, *AnswerEvent)
}
