package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Axis conventions: Y is up, forward is -Z
var (
	AxisUp      = mgl64.Vec3{0, 1, 0}
	AxisForward = mgl64.Vec3{0, 0, -1}
	AxisRight   = mgl64.Vec3{1, 0, 0}
)

// Transform is a world or local pose
// Zero Rotation and zero Scale are read as identity so Transform{} is usable
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// IdentityTransform returns the identity pose at the origin
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// TransformAt returns an unrotated pose at the given translation
func TransformAt(p mgl64.Vec3) Transform {
	t := IdentityTransform()
	t.Translation = p
	return t
}

// Orientation returns the normalized rotation, identity if unset
func (t Transform) Orientation() mgl64.Quat {
	if t.Rotation.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return t.Rotation.Normalize()
}

// Scaling returns the scale, unit if unset
func (t Transform) Scaling() mgl64.Vec3 {
	if t.Scale == (mgl64.Vec3{}) {
		return mgl64.Vec3{1, 1, 1}
	}
	return t.Scale
}

// Forward returns the world-space forward axis
func (t Transform) Forward() mgl64.Vec3 {
	return t.Orientation().Rotate(AxisForward)
}

// Mul composes parent (receiver) with a child local pose
// WorldPos = ParentPos + ParentRot * (ParentScale * LocalPos)
func (t Transform) Mul(local Transform) Transform {
	ps := t.Scaling()
	ls := local.Scaling()
	scaled := mgl64.Vec3{
		local.Translation.X() * ps.X(),
		local.Translation.Y() * ps.Y(),
		local.Translation.Z() * ps.Z(),
	}
	rot := t.Orientation()
	return Transform{
		Translation: t.Translation.Add(rot.Rotate(scaled)),
		Rotation:    rot.Mul(local.Orientation()).Normalize(),
		Scale:       mgl64.Vec3{ps.X() * ls.X(), ps.Y() * ls.Y(), ps.Z() * ls.Z()},
	}
}

// Translated returns a copy moved by delta
func (t Transform) Translated(delta mgl64.Vec3) Transform {
	t.Translation = t.Translation.Add(delta)
	return t
}

// LookingTo returns a copy whose forward axis points along dir
// Degenerate directions leave the rotation unchanged
func (t Transform) LookingTo(dir mgl64.Vec3) Transform {
	if dir.Len() == 0 {
		return t
	}
	t.Rotation = mgl64.QuatBetweenVectors(AxisForward, dir.Normalize())
	return t
}
