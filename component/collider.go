package component

import "github.com/go-gl/mathgl/mgl64"

// ColliderShape is the resolved physical primitive
type ColliderShape uint8

const (
	ColliderShapeBall ColliderShape = iota
	ColliderShapeCuboid
	ColliderShapeCapsule // Beam core, extends along local forward
)

// ColliderComponent is a built collider attached to a contact or projection entity
type ColliderComponent struct {
	Shape       ColliderShape
	Radius      float64    // Ball and capsule
	HalfExtents mgl64.Vec3 // Cuboid
	Length      float64    // Capsule segment length
	Offset      mgl64.Vec3 // Local offset of the primitive center
	Hollow      bool
	Sensor      bool // Reports overlaps, never blocks rays cast as solid-only
	Category    Category
	Blockers    Category
}
