package keyring

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sack/internal/core/ports"
)

// NodeID is the unique identifier for the key ring Graft node.
const NodeID graft.ID = "adapter.keyring"

func init() {
	graft.Register(graft.Node[ports.KeyRing]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KeyRing, error) {
			return New(), nil
		},
	})
}
