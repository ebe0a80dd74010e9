package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rehost/internal/core/ports"
)

// NodeID is the unique identifier for the settings loader Graft node.
const NodeID graft.ID = "adapter.settings_loader"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			return NewLoader(), nil
		},
	})
}
