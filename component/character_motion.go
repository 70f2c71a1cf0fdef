package component

import "github.com/go-gl/mathgl/mgl64"

// CharacterMotion is a simple point-motion command
// Implemented by MoveDirection, MoveToTarget, MoveStop
type CharacterMotion interface {
	isCharacterMotion()
}

// MoveDirection moves along a direction indefinitely
type MoveDirection struct {
	Speed     float64
	Direction mgl64.Vec3
}

// MoveToTarget moves toward a point and completes on arrival
type MoveToTarget struct {
	Speed  float64
	Target mgl64.Vec3
}

// MoveStop produces no movement and completes immediately
type MoveStop struct{}

func (MoveDirection) isCharacterMotion() {}
func (MoveToTarget) isCharacterMotion()  {}
func (MoveStop) isCharacterMotion()      {}

// CharacterMotionComponent holds the active command
// IsDone flips true once and stays true until the component is replaced
type CharacterMotionComponent struct {
	Motion    CharacterMotion
	IsDone    bool
	LastDelta mgl64.Vec3 // Translation of the most recent tick, zero once done
}

// InMotionComponent is the driving marker, removed when the command completes
type InMotionComponent struct{}

// ImmobilizedComponent excludes an entity from motion integration
type ImmobilizedComponent struct {
	Source string
}
