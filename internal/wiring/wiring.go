// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sack/internal/adapters/cas"
	_ "go.trai.ch/sack/internal/adapters/config"
	_ "go.trai.ch/sack/internal/adapters/keyring"
	_ "go.trai.ch/sack/internal/adapters/logger"
	_ "go.trai.ch/sack/internal/adapters/pool"
	_ "go.trai.ch/sack/internal/adapters/watcher"
	_ "go.trai.ch/sack/internal/adapters/yumdb"
	// Register app nodes.
	_ "go.trai.ch/sack/internal/app"
)
