package runtime

import (
	"context"
	"time"

	"github.com/aretw0/crossroads/pkg/domain"
)

func (e *Engine) emitNodeEnter(ctx context.Context, node domain.Node) {
	if e.hooks.OnNodeEnter == nil {
		return
	}
	e.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNodeEnter},
		NodeID:    node.ID,
		Key:       node.Key,
		Terminal:  e.tree.IsLeaf(node.ID),
	})
}

func (e *Engine) emitNodeLeave(ctx context.Context, node domain.Node) {
	if e.hooks.OnNodeLeave == nil {
		return
	}
	e.hooks.OnNodeLeave(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNodeLeave},
		NodeID:    node.ID,
		Key:       node.Key,
	})
}

func (e *Engine) emitAnswer(ctx context.Context, from domain.NodeID, answer bool, target domain.NodeID) {
	if e.hooks.OnAnswer == nil {
		return
	}
	e.hooks.OnAnswer(ctx, &domain.AnswerEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventAnswer},
		NodeID:    from,
		Answer:    answer,
		Target:    target,
	})
}
