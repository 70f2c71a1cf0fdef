package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RayPlane intersects the ray origin + t*dir with the plane through planePoint with normal
// Returns the hit point and t; false when parallel or behind the origin
func RayPlane(origin, dir, planePoint, normal mgl64.Vec3) (mgl64.Vec3, float64, bool) {
	denom := normal.Dot(dir)
	if math.Abs(denom) < Epsilon {
		return mgl64.Vec3{}, 0, false
	}
	t := planePoint.Sub(origin).Dot(normal) / denom
	if t < 0 {
		return mgl64.Vec3{}, 0, false
	}
	return origin.Add(dir.Mul(t)), t, true
}

// RaySphere intersects a ray (dir must be unit length) with a sphere
// solid: origin inside the sphere hits at t=0
// non-solid: origin inside the sphere hits at the exit boundary
// hollow: only the shell counts, so an inside origin always hits the exit boundary
func RaySphere(origin, dir, center mgl64.Vec3, radius float64, solid, hollow bool) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius

	if c <= 0 {
		// Origin inside or on the sphere
		if solid && !hollow {
			return 0, true
		}
		disc := b*b - c
		return -b + math.Sqrt(disc), true
	}

	// Outside and pointing away
	if b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}

// RayBox intersects a ray with an axis-aligned box centered at the origin with half extents
// The ray must already be expressed in box-local space
func RayBox(origin, dir, half mgl64.Vec3, solid bool) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < Epsilon {
			if origin[i] < -half[i] || origin[i] > half[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[i]
		t1 := (-half[i] - origin[i]) * inv
		t2 := (half[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		// Origin inside
		if solid {
			return 0, true
		}
		return tMax, true
	}
	return tMin, true
}
