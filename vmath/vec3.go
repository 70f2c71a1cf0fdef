package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance for geometric equality tests
const Epsilon = 1e-9

// SafeNormalize returns the unit vector of v, zero vector for zero or non-finite input
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	mag := v.Len()
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return mgl64.Vec3{}
	}
	inv := 1.0 / mag
	return mgl64.Vec3{v.X() * inv, v.Y() * inv, v.Z() * inv}
}

// Distance returns |a - b|
func Distance(a, b mgl64.Vec3) float64 {
	return b.Sub(a).Len()
}

// ClampToSphere projects point onto the sphere of radius around center when it lies outside
// Returns the clamped point and whether clamping occurred
func ClampToSphere(center, point mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	offset := point.Sub(center)
	dist := offset.Len()
	if dist <= radius {
		return point, false
	}
	if radius <= 0 {
		return center, true
	}
	// One division, three multiplies
	k := radius / dist
	return center.Add(mgl64.Vec3{offset.X() * k, offset.Y() * k, offset.Z() * k}), true
}

// IsFinite reports whether all components are finite
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// MoveTowards steps from current toward target by at most maxStep
// Lands exactly on target when within reach
func MoveTowards(current, target mgl64.Vec3, maxStep float64) mgl64.Vec3 {
	delta := target.Sub(current)
	dist := delta.Len()
	if dist <= maxStep || dist == 0 {
		return target
	}
	return current.Add(delta.Mul(maxStep / dist))
}
