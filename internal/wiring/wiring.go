// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rehost/internal/adapters/config"
	_ "go.trai.ch/rehost/internal/adapters/detector"
	_ "go.trai.ch/rehost/internal/adapters/fs"
	_ "go.trai.ch/rehost/internal/adapters/logger"
	_ "go.trai.ch/rehost/internal/adapters/metrics"
	_ "go.trai.ch/rehost/internal/adapters/shell"
	_ "go.trai.ch/rehost/internal/adapters/tui"
	// Register app nodes.
	_ "go.trai.ch/rehost/internal/app"
)
