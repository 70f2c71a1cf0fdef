package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
)

// SkillCastRequestPayload carries a cast to SkillCastSystem
type SkillCastRequestPayload struct {
	Request component.CastRequest
}

// SkillSpawnedPayload describes a freshly created skill group
type SkillSpawnedPayload struct {
	Name   string
	Skill  component.SkillEntities
	Caster core.Entity
}

// SkillSpawnFailedPayload carries the construction error of a rejected cast
type SkillSpawnFailedPayload struct {
	Name   string
	Caster core.Entity
	Err    error
}

// SkillDespawnPayload identifies a skill group by its ownership record
type SkillDespawnPayload struct {
	Skill component.SkillEntities
}

// GroundTargetPlacedPayload reports where a stationary skill landed
type GroundTargetPlacedPayload struct {
	Root     core.Entity
	Position mgl64.Vec3
	Clamped  bool
}

// ProjectileEndPayload reports a projectile leaving play
type ProjectileEndPayload struct {
	Skill    component.SkillEntities
	Position mgl64.Vec3
	Blocker  core.Entity // NoEntity on expiry
}

// MotionCompletedPayload reports a finished character motion command
type MotionCompletedPayload struct {
	Entity   core.Entity
	Position mgl64.Vec3
}
