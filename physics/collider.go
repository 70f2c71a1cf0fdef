package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/parameter"
	"github.com/lixenwraith/skillcast/vmath"
)

var (
	ErrInvalidRadius  = errors.New("radius must be positive and finite")
	ErrInvalidRange   = errors.New("beam range must be positive and finite")
	ErrInvalidScale   = errors.New("scale must be positive and finite on every axis")
	ErrUnknownModel   = errors.New("unknown model")
	ErrDegenerateMesh = errors.New("degenerate mesh")
	ErrNoShape        = errors.New("no shape")
)

// ConstructionError reports a shape that could not produce a collider
type ConstructionError struct {
	Role  component.MemberRole
	Shape string
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("build %s collider (%s): %v", e.Role, e.Shape, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// BuildCollider turns a shape description into a collider for the given role
// Contact colliders are solid; projection colliders are sensors
func BuildCollider(role component.MemberRole, desc component.ShapeDesc, meshes MeshLibrary) (component.ColliderComponent, error) {
	fail := func(name string, err error) (component.ColliderComponent, error) {
		return component.ColliderComponent{}, &ConstructionError{Role: role, Shape: name, Err: err}
	}

	col := component.ColliderComponent{
		Sensor:   role == component.RoleProjection,
		Category: component.CategorySkill,
		Blockers: desc.Blockers,
	}

	switch s := desc.Shape.(type) {
	case component.ShapeSphere:
		if !validPositive(s.Radius) {
			return fail(s.ShapeName(), ErrInvalidRadius)
		}
		col.Shape = component.ColliderShapeBall
		col.Radius = s.Radius
		col.Hollow = s.Hollow

	case component.ShapeBeam:
		if !validPositive(s.Range) {
			return fail(s.ShapeName(), ErrInvalidRange)
		}
		if s.Radius < 0 || math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) {
			return fail(s.ShapeName(), ErrInvalidRadius)
		}
		col.Shape = component.ColliderShapeCapsule
		col.Radius = s.Radius
		col.Length = s.Range
		// Segment starts at the root and extends along forward
		col.Offset = mgl64.Vec3{0, 0, -s.Range / 2}

	case component.ShapeCustom:
		built, err := buildMeshCollider(s, meshes)
		if err != nil {
			return fail(s.ShapeName(), err)
		}
		built.Sensor = col.Sensor
		built.Category = col.Category
		built.Blockers = col.Blockers
		col = built

	case nil:
		return fail("none", ErrNoShape)

	default:
		return fail(fmt.Sprintf("%T", s), ErrNoShape)
	}

	return col, nil
}

func buildMeshCollider(s component.ShapeCustom, meshes MeshLibrary) (component.ColliderComponent, error) {
	scale := s.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	for _, c := range scale {
		if !validPositive(c) {
			return component.ColliderComponent{}, ErrInvalidScale
		}
	}

	if meshes == nil {
		return component.ColliderComponent{}, fmt.Errorf("%q: %w", s.Model, ErrUnknownModel)
	}
	verts, ok := meshes.Vertices(s.Model)
	if !ok {
		return component.ColliderComponent{}, fmt.Errorf("%q: %w", s.Model, ErrUnknownModel)
	}
	if len(verts) < 4 {
		return component.ColliderComponent{}, fmt.Errorf("%q has %d vertices: %w", s.Model, len(verts), ErrDegenerateMesh)
	}

	lo := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range verts {
		if !vmath.IsFinite(v) {
			return component.ColliderComponent{}, fmt.Errorf("%q has non-finite vertex: %w", s.Model, ErrDegenerateMesh)
		}
		sv := mgl64.Vec3{v.X() * scale.X(), v.Y() * scale.Y(), v.Z() * scale.Z()}
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], sv[i])
			hi[i] = math.Max(hi[i], sv[i])
		}
	}

	half := hi.Sub(lo).Mul(0.5)
	// Flat or collapsed meshes cannot enclose a volume
	for _, c := range half {
		if c < parameter.MinColliderExtent {
			return component.ColliderComponent{}, fmt.Errorf("%q has zero extent: %w", s.Model, ErrDegenerateMesh)
		}
	}
	center := lo.Add(half)

	col := component.ColliderComponent{Offset: center}
	switch s.Collider {
	case component.ColliderCuboid:
		col.Shape = component.ColliderShapeCuboid
		col.HalfExtents = half
	default:
		col.Shape = component.ColliderShapeBall
		col.Radius = half.Len()
	}
	return col, nil
}

func validPositive(f float64) bool {
	return f > 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}
