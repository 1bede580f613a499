// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tgraph/internal/adapters/cas"
	_ "go.trai.ch/tgraph/internal/adapters/config"
	_ "go.trai.ch/tgraph/internal/adapters/linear"
	_ "go.trai.ch/tgraph/internal/adapters/logger"
	_ "go.trai.ch/tgraph/internal/adapters/settings"
	_ "go.trai.ch/tgraph/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/tgraph/internal/app"
)
