package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestZeroTransformIsIdentity(t *testing.T) {
	var tr Transform
	if !tr.Forward().ApproxEqual(AxisForward) {
		t.Errorf("Expected forward %v, got %v", AxisForward, tr.Forward())
	}
	if tr.Scaling() != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Expected unit scale, got %v", tr.Scaling())
	}
}

func TestTransformForwardRotated(t *testing.T) {
	tr := IdentityTransform()
	// Quarter turn about Y maps -Z onto -X
	tr.Rotation = mgl64.QuatRotate(math.Pi/2, AxisUp)

	want := mgl64.Vec3{-1, 0, 0}
	if !tr.Forward().ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("Expected forward %v, got %v", want, tr.Forward())
	}
}

func TestTransformMulComposesParentAndLocal(t *testing.T) {
	parent := TransformAt(mgl64.Vec3{10, 0, 0})
	parent.Rotation = mgl64.QuatRotate(math.Pi/2, AxisUp)

	local := TransformAt(mgl64.Vec3{0, 1, -2})
	world := parent.Mul(local)

	// -Z local offset becomes -X after the quarter turn
	want := mgl64.Vec3{8, 1, 0}
	if !world.Translation.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("Expected translation %v, got %v", want, world.Translation)
	}
	if !world.Forward().ApproxEqualThreshold(parent.Forward(), 1e-9) {
		t.Errorf("Expected child to inherit parent facing, got %v", world.Forward())
	}
}

func TestLookingTo(t *testing.T) {
	tr := IdentityTransform().LookingTo(mgl64.Vec3{3, 0, 0})
	if !tr.Forward().ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("Expected forward +X, got %v", tr.Forward())
	}

	same := tr.LookingTo(mgl64.Vec3{})
	if same.Rotation != tr.Rotation {
		t.Error("Expected zero direction to keep rotation")
	}
}

func TestPersistentIDRoundTrip(t *testing.T) {
	id := NewPersistentID()
	if id.IsZero() {
		t.Fatal("Expected non-zero identity")
	}
	parsed, err := ParsePersistentID(id.String())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed != id {
		t.Errorf("Expected %v, got %v", id, parsed)
	}
	if _, err := ParsePersistentID("not-a-uuid"); err == nil {
		t.Error("Expected parse error")
	}
}
