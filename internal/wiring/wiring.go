// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jcdb/internal/adapters/config"
	_ "go.trai.ch/jcdb/internal/adapters/database"
	_ "go.trai.ch/jcdb/internal/adapters/fs"
	_ "go.trai.ch/jcdb/internal/adapters/logger"
	_ "go.trai.ch/jcdb/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/jcdb/internal/app"
	_ "go.trai.ch/jcdb/internal/engine/normalizer"
)
