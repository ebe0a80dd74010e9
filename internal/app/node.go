package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rehost/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rehost/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/rehost/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rehost/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rehost/internal/adapters/metrics"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rehost/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rehost/internal/adapters/tui"      //nolint:depguard // Wired in app layer
	"go.trai.ch/rehost/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.StoreNodeID,
			shell.NodeID,
			tui.NodeID,
			detector.NodeID,
			config.NodeID,
			metrics.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.DocumentStore](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	selector, err := graft.Dep[ports.Selector](ctx)
	if err != nil {
		return nil, err
	}

	terminal, err := graft.Dep[ports.Terminal](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	exporter, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(store, resolver, selector, terminal, settings, exporter, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
