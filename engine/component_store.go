package engine

import (
	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
)

// ComponentStore provides typed component stores
// Initialized once per world; pointers remain valid for the world lifetime
type ComponentStore struct {
	// Pose & identity
	Transform   *Store[component.TransformComponent]
	Identity    *Store[component.IdentityComponent]
	MountPoints *Store[component.MountPointsComponent]

	// Skill structure
	SkillGroup  *Store[component.SkillGroupComponent]
	SkillMember *Store[component.SkillMemberComponent]
	Collider    *Store[component.ColliderComponent]

	// Skill motion
	Attachment       *Store[component.AttachmentComponent]
	ProjectileFlight *Store[component.ProjectileFlightComponent]
	GroundTarget     *Store[component.GroundTargetComponent]
	Beam             *Store[component.BeamComponent]
	ActiveBeam       *Store[component.ActiveBeamComponent]

	// Character motion
	CharacterMotion *Store[component.CharacterMotionComponent]
	InMotion        *Store[component.InMotionComponent]
	Immobilized     *Store[component.ImmobilizedComponent]

	// Effect
	Damage  *Store[component.DamageComponent]
	Force   *Store[component.ForceComponent]
	Gravity *Store[component.GravityComponent]
}

// newComponentStore allocates every store and returns the lifecycle registry
func newComponentStore() (ComponentStore, []AnyStore) {
	c := ComponentStore{
		Transform:   NewStore[component.TransformComponent](),
		Identity:    NewStore[component.IdentityComponent](),
		MountPoints: NewStore[component.MountPointsComponent](),

		SkillGroup:  NewStore[component.SkillGroupComponent](),
		SkillMember: NewStore[component.SkillMemberComponent](),
		Collider:    NewStore[component.ColliderComponent](),

		Attachment:       NewStore[component.AttachmentComponent](),
		ProjectileFlight: NewStore[component.ProjectileFlightComponent](),
		GroundTarget:     NewStore[component.GroundTargetComponent](),
		Beam:             NewStore[component.BeamComponent](),
		ActiveBeam:       NewStore[component.ActiveBeamComponent](),

		CharacterMotion: NewStore[component.CharacterMotionComponent](),
		InMotion:        NewStore[component.InMotionComponent](),
		Immobilized:     NewStore[component.ImmobilizedComponent](),

		Damage:  NewStore[component.DamageComponent](),
		Force:   NewStore[component.ForceComponent](),
		Gravity: NewStore[component.GravityComponent](),
	}

	all := []AnyStore{
		c.Transform, c.Identity, c.MountPoints,
		c.SkillGroup, c.SkillMember, c.Collider,
		c.Attachment, c.ProjectileFlight, c.GroundTarget, c.Beam, c.ActiveBeam,
		c.CharacterMotion, c.InMotion, c.Immobilized,
		c.Damage, c.Force, c.Gravity,
	}
	return c, all
}

// InsertEffect routes an effect value to its typed store
// Re-inserting an effect of the same kind overwrites it
func (c ComponentStore) InsertEffect(e core.Entity, eff component.Effect) {
	switch v := eff.(type) {
	case component.DamageComponent:
		c.Damage.SetComponent(e, v)
	case component.ForceComponent:
		c.Force.SetComponent(e, v)
	case component.GravityComponent:
		c.Gravity.SetComponent(e, v)
	}
}
