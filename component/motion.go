package component

import "github.com/lixenwraith/skillcast/core"

// Motion is how a spawned skill moves; chosen once at cast time
// Implemented by MotionHeldBy, MotionStationary, MotionProjectile
type Motion interface {
	CasterEntity() core.Entity
	isMotion()
}

// MotionHeldBy rigidly attaches the skill at a named mount point of the caster
type MotionHeldBy struct {
	Caster  core.Entity
	Spawner string
}

// MotionStationary places the skill once at a target clamped to range
type MotionStationary struct {
	Caster       core.Entity
	MaxCastRange float64
	Target       SkillTarget
}

// MotionProjectile launches the skill from a mount point along the caster's facing
type MotionProjectile struct {
	Caster  core.Entity
	Spawner string
	Speed   float64
	Range   float64
}

func (m MotionHeldBy) CasterEntity() core.Entity     { return m.Caster }
func (m MotionStationary) CasterEntity() core.Entity { return m.Caster }
func (m MotionProjectile) CasterEntity() core.Entity { return m.Caster }

func (MotionHeldBy) isMotion()     {}
func (MotionStationary) isMotion() {}
func (MotionProjectile) isMotion() {}

// AttachmentComponent keeps a HeldBy skill root on its caster's mount
type AttachmentComponent struct {
	Caster core.Entity
	Mount  string
}

// ProjectileFlightComponent tracks a travelling skill root
type ProjectileFlightComponent struct {
	Caster    core.Entity
	Speed     float64
	Remaining float64 // Distance left before expiry
}
