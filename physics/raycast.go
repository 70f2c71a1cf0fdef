package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
	"github.com/lixenwraith/skillcast/vmath"
)

// RayHit is the nearest intersection along a ray
type RayHit struct {
	Entity       core.Entity
	TimeOfImpact float64 // Distance along the unit direction
	Point        mgl64.Vec3
}

// QueryFilter narrows which colliders a ray may hit
type QueryFilter struct {
	Exclude        []core.Entity
	Mask           component.Category // Zero matches every category
	ExcludeSensors bool
}

func (f QueryFilter) excludes(e core.Entity, col component.ColliderComponent) bool {
	if f.ExcludeSensors && col.Sensor {
		return true
	}
	if f.Mask != component.CategoryNone && !f.Mask.Intersects(col.Category) {
		return true
	}
	for _, x := range f.Exclude {
		if x == e {
			return true
		}
	}
	return false
}

// RayCaster is the ray query capability consumed by beam and projectile tracking
// solid: a ray starting inside a collider hits at distance zero
type RayCaster interface {
	CastRay(origin, dir mgl64.Vec3, maxDist float64, solid bool, filter QueryFilter) (RayHit, bool)
}

// ColliderSource exposes the colliders of a scene and their world poses
type ColliderSource interface {
	ColliderEntities() []core.Entity
	ColliderOf(e core.Entity) (component.ColliderComponent, bool)
	TransformOf(e core.Entity) (core.Transform, bool)
}

// SceneRayCaster casts rays against every collider of a ColliderSource
// Capsule colliders (beam cores) are never ray targets
type SceneRayCaster struct {
	Source ColliderSource
}

func NewSceneRayCaster(src ColliderSource) *SceneRayCaster {
	return &SceneRayCaster{Source: src}
}

func (r *SceneRayCaster) CastRay(origin, dir mgl64.Vec3, maxDist float64, solid bool, filter QueryFilter) (RayHit, bool) {
	dir = vmath.SafeNormalize(dir)
	if dir == (mgl64.Vec3{}) || maxDist < 0 {
		return RayHit{}, false
	}

	best := RayHit{TimeOfImpact: math.Inf(1)}
	found := false

	for _, e := range r.Source.ColliderEntities() {
		col, ok := r.Source.ColliderOf(e)
		if !ok || filter.excludes(e, col) {
			continue
		}
		tr, ok := r.Source.TransformOf(e)
		if !ok {
			continue
		}

		toi, hit := intersect(origin, dir, tr, col, solid)
		if !hit || toi > maxDist {
			continue
		}
		if toi < best.TimeOfImpact || (toi == best.TimeOfImpact && e < best.Entity) {
			best = RayHit{Entity: e, TimeOfImpact: toi}
			found = true
		}
	}

	if !found {
		return RayHit{}, false
	}
	best.Point = origin.Add(dir.Mul(best.TimeOfImpact))
	return best, true
}

func intersect(origin, dir mgl64.Vec3, tr core.Transform, col component.ColliderComponent, solid bool) (float64, bool) {
	scale := tr.Scaling()
	center := tr.Mul(core.TransformAt(col.Offset)).Translation

	switch col.Shape {
	case component.ColliderShapeBall:
		maxScale := math.Max(scale.X(), math.Max(scale.Y(), scale.Z()))
		return vmath.RaySphere(origin, dir, center, col.Radius*maxScale, solid, col.Hollow)

	case component.ColliderShapeCuboid:
		inv := tr.Orientation().Inverse()
		localOrigin := inv.Rotate(origin.Sub(center))
		localDir := inv.Rotate(dir)
		half := mgl64.Vec3{
			col.HalfExtents.X() * scale.X(),
			col.HalfExtents.Y() * scale.Y(),
			col.HalfExtents.Z() * scale.Z(),
		}
		return vmath.RayBox(localOrigin, localDir, half, solid)
	}
	return 0, false
}
