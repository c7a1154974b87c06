package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sack/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/sack/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/sack/internal/adapters/keyring" //nolint:depguard // Wired in app layer
	"go.trai.ch/sack/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/sack/internal/adapters/pool"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sack/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/sack/internal/adapters/yumdb"   //nolint:depguard // Wired in app layer
	"go.trai.ch/sack/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the entry point needs from the graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cas.NodeID,
			pool.NodeID,
			yumdb.NodeID,
			keyring.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.FingerprintStore](ctx)
			if err != nil {
				return nil, err
			}

			pools, err := graft.Dep[ports.PoolProvider](ctx)
			if err != nil {
				return nil, err
			}

			packageDBs, err := graft.Dep[ports.PackageDBProvider](ctx)
			if err != nil {
				return nil, err
			}

			keys, err := graft.Dep[ports.KeyRing](ctx)
			if err != nil {
				return nil, err
			}

			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, log, store, pools, packageDBs, keys, w), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
