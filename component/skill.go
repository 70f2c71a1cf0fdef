package component

import "github.com/lixenwraith/skillcast/core"

// SkillRoot is the root of a spawned skill: stable identity plus transient handle
type SkillRoot = core.Identity

// SkillEntities is the ownership record of one spawned skill
// Root owns Contact and Projection; the three are created and destroyed together
type SkillEntities struct {
	Root       SkillRoot
	Contact    core.Entity
	Projection core.Entity
}

// Members returns every entity of the group, root first
func (s SkillEntities) Members() []core.Entity {
	return []core.Entity{s.Root.Transient, s.Contact, s.Projection}
}

// SkillGroupComponent lives on the root and records the owned children
type SkillGroupComponent struct {
	Entities SkillEntities
	Caster   core.Entity
	Name     string // Catalog name, empty for ad-hoc casts
}

// MemberRole distinguishes the two owned children
type MemberRole uint8

const (
	RoleContact MemberRole = iota
	RoleProjection
)

func (r MemberRole) String() string {
	switch r {
	case RoleContact:
		return "contact"
	case RoleProjection:
		return "projection"
	default:
		return "unknown"
	}
}

// SkillMemberComponent lives on contact and projection and points back to the root
type SkillMemberComponent struct {
	Root core.Entity
	Role MemberRole
}

// CastRequest is an abstract skill cast
type CastRequest struct {
	Name       string
	Motion     Motion
	Contact    ShapeDesc
	Projection ShapeDesc
	Effects    EffectSet
}
