package component

import "github.com/go-gl/mathgl/mgl64"

// Category is a bitmask of collision categories
type Category uint8

const (
	CategoryTerrain Category = 1 << iota
	CategoryActor
	CategoryBarrier
	CategorySkill

	CategoryNone Category = 0
	CategoryAll  Category = CategoryTerrain | CategoryActor | CategoryBarrier | CategorySkill
)

// Intersects reports whether any category bit is shared
func (c Category) Intersects(other Category) bool {
	return c&other != 0
}

// ColliderKind selects how a custom model becomes a collider
type ColliderKind uint8

const (
	ColliderBall   ColliderKind = iota // Bounding sphere of the mesh
	ColliderCuboid                     // Bounding box of the mesh
)

// Shape is a skill's geometry description
// Implemented by ShapeSphere, ShapeCustom, ShapeBeam
type Shape interface {
	ShapeName() string
	isShape()
}

// ShapeSphere is a ball; Hollow makes only the shell collide
type ShapeSphere struct {
	Radius float64
	Hollow bool
}

// ShapeCustom builds a collider from a named model
type ShapeCustom struct {
	Model    string
	Scale    mgl64.Vec3
	Collider ColliderKind
}

// ShapeBeam is a ray-like shape extending forward up to Range
type ShapeBeam struct {
	Range  float64
	Radius float64
}

func (ShapeSphere) ShapeName() string { return "sphere" }
func (ShapeCustom) ShapeName() string { return "custom" }
func (ShapeBeam) ShapeName() string   { return "beam" }

func (ShapeSphere) isShape() {}
func (ShapeCustom) isShape() {}
func (ShapeBeam) isShape()   {}

// ShapeDesc is a shape plus the categories that stop or destroy it
type ShapeDesc struct {
	Shape    Shape
	Blockers Category
}
