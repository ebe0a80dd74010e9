package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rehost/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Resolver, error) {
			return NewResolver(), nil
		},
	})
}
