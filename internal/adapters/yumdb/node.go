package yumdb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sack/internal/core/ports"
)

// NodeID is the unique identifier for the package metadata store Graft node.
const NodeID graft.ID = "adapter.package_db_provider"

func init() {
	graft.Register(graft.Node[ports.PackageDBProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageDBProvider, error) {
			return NewProvider(), nil
		},
	})
}
