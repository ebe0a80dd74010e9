package tui

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rehost/internal/core/ports"
)

// NodeID is the unique identifier for the selector Graft node.
const NodeID graft.ID = "adapter.selector"

func init() {
	graft.Register(graft.Node[ports.Selector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Selector, error) {
			return NewSelector(), nil
		},
	})
}
