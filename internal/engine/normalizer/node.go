package normalizer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jcdb/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jcdb/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jcdb/internal/core/ports"
)

// NodeID is the unique identifier for the normalizer Graft node.
const NodeID graft.ID = "engine.normalizer"

func init() {
	graft.Register(graft.Node[*Normalizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Normalizer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, tracer, DefaultCacheSize)
		},
	})
}
