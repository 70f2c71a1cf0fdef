package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/core"
)

// SkillTarget is where a stationary skill is aimed
// Implemented by TargetGround and TargetEntity
type SkillTarget interface {
	isSkillTarget()
}

// TargetGround aims at a fixed world point
type TargetGround struct {
	Point mgl64.Vec3
}

// TargetEntity aims at a locked entity by persistent identity
type TargetEntity struct {
	ID core.PersistentID
}

func (TargetGround) isSkillTarget() {}
func (TargetEntity) isSkillTarget() {}

// PlacementPhase is the one-shot placement state machine
type PlacementPhase uint8

const (
	PlacementUnplaced PlacementPhase = iota // Fresh instance, waiting for resolvable caster/target
	PlacementPlaced                         // Terminal until the component is replaced
)

// GroundTargetComponent drives one-shot placement of a stationary skill
type GroundTargetComponent struct {
	Caster       core.Entity
	Target       SkillTarget
	MaxCastRange float64
	Phase        PlacementPhase
}
