package component

import "github.com/go-gl/mathgl/mgl64"

// Effect is a gameplay effect attachable to a skill entity
// Implemented by DamageComponent, ForceComponent, GravityComponent
type Effect interface {
	EffectName() string
	isEffect()
}

// DamageComponent deals damage on contact or overlap
type DamageComponent struct {
	Amount float64
	Kind   string
}

// ForceComponent pushes overlapped bodies
// Radial pushes away from the entity center, otherwise along Impulse
type ForceComponent struct {
	Impulse mgl64.Vec3
	Radial  float64
}

// GravityComponent pulls bodies toward the entity center
type GravityComponent struct {
	Strength float64
	Radius   float64
}

func (DamageComponent) EffectName() string  { return "damage" }
func (ForceComponent) EffectName() string   { return "force" }
func (GravityComponent) EffectName() string { return "gravity" }

func (DamageComponent) isEffect()  {}
func (ForceComponent) isEffect()   {}
func (GravityComponent) isEffect() {}

// EffectSet groups effects per member of a skill group
type EffectSet struct {
	Root       []Effect
	Contact    []Effect
	Projection []Effect
}
