package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rehost/internal/core/ports"
)

// NodeID is the unique identifier for the terminal detector Graft node.
// The detector has no dependencies.
const NodeID graft.ID = "adapter.terminal"

func init() {
	graft.Register(graft.Node[ports.Terminal]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Terminal, error) {
			return New(), nil
		},
	})
}
