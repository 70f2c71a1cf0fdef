package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/skillcast/config"
	"github.com/lixenwraith/skillcast/physics"
)

// TimeResource is the clock state of the current tick
type TimeResource struct {
	DeltaTime   time.Duration
	FrameNumber int64
	Elapsed     time.Duration
}

// Resources holds world-global collaborators shared read-only by systems
type Resources struct {
	Time   TimeResource
	Config config.Config
	Log    *zap.Logger

	// RayCaster is nil when no ray query capability is wired
	RayCaster physics.RayCaster
	Meshes    physics.MeshLibrary
}

func newResources() *Resources {
	return &Resources{
		Config: config.Default(),
		Log:    zap.NewNop(),
		Meshes: physics.DefaultMeshes(),
	}
}
