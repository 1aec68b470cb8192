package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jcdb/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jcdb/internal/adapters/database"  //nolint:depguard // Wired in app layer
	"go.trai.ch/jcdb/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/jcdb/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jcdb/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/jcdb/internal/core/ports"
	"go.trai.ch/jcdb/internal/engine/normalizer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			database.NodeID,
			fs.ListerNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			normalizer.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.DatabaseStore](ctx)
	if err != nil {
		return nil, err
	}
	lister, err := graft.Dep[ports.DirectoryLister](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	norm, err := graft.Dep[*normalizer.Normalizer](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, store, lister, log, tracer, norm), nil
}
