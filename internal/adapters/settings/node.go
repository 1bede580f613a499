package settings

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tgraph/internal/core/ports"
)

// NodeID is the unique identifier for the workspace context factory Graft node.
const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[ports.WorkspaceContextFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkspaceContextFactory, error) {
			return Factory{}, nil
		},
	})
}
