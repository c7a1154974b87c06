package pool

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sack/internal/core/ports"
)

// NodeID is the unique identifier for the package pool provider Graft node.
const NodeID graft.ID = "adapter.pool_provider"

func init() {
	graft.Register(graft.Node[ports.PoolProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PoolProvider, error) {
			return NewProvider(), nil
		},
	})
}
