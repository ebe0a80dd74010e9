package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rehost/internal/core/ports"
)

// StoreNodeID is the unique identifier for the document store Graft node.
const StoreNodeID graft.ID = "adapter.fs.store"

func init() {
	graft.Register(graft.Node[ports.DocumentStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentStore, error) {
			return NewStore(), nil
		},
	})
}
