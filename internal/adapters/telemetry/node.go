package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tgraph/internal/adapters/logger"
	"go.trai.ch/tgraph/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			// The bridge processes spans synchronously; there is nothing to flush on exit.
			tracer, _ := Setup(log)
			return tracer, nil
		},
	})
}
