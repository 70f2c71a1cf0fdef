package system

import (
	"github.com/lixenwraith/skillcast/engine"
)

// RegisterAll adds every skill system to the world in scheduling order
// Returns the cast system for synchronous casts and effect insertion
func RegisterAll(world *engine.World) *SkillCastSystem {
	cast := NewSkillCastSystem(world)

	world.AddSystem(NewCommandSystem(world))
	world.AddSystem(cast)
	world.AddSystem(NewAttachmentSystem(world))
	world.AddSystem(NewProjectileSystem(world))
	world.AddSystem(NewGroundTargetSystem(world))
	world.AddSystem(NewGroupSyncSystem(world))
	world.AddSystem(NewBeamSystem(world))
	world.AddSystem(NewCharacterMotionSystem(world))

	return cast
}
