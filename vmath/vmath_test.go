package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClampToSphere(t *testing.T) {
	tests := []struct {
		name    string
		center  mgl64.Vec3
		point   mgl64.Vec3
		radius  float64
		want    mgl64.Vec3
		clamped bool
	}{
		{"inside", mgl64.Vec3{}, mgl64.Vec3{1, 0, 1}, 5, mgl64.Vec3{1, 0, 1}, false},
		{"on boundary", mgl64.Vec3{}, mgl64.Vec3{3, 0, 4}, 5, mgl64.Vec3{3, 0, 4}, false},
		{"outside", mgl64.Vec3{}, mgl64.Vec3{6, 0, 8}, 5, mgl64.Vec3{3, 0, 4}, true},
		{"offset center", mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 11}, 2, mgl64.Vec3{1, 1, 3}, true},
		{"zero radius", mgl64.Vec3{2, 0, 0}, mgl64.Vec3{5, 0, 0}, 0, mgl64.Vec3{2, 0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := ClampToSphere(tt.center, tt.point, tt.radius)
			if clamped != tt.clamped {
				t.Errorf("clamped = %v, want %v", clamped, tt.clamped)
			}
			if !got.ApproxEqualThreshold(tt.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSafeNormalize(t *testing.T) {
	if got := SafeNormalize(mgl64.Vec3{}); got != (mgl64.Vec3{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
	if got := SafeNormalize(mgl64.Vec3{math.NaN(), 0, 0}); got != (mgl64.Vec3{}) {
		t.Errorf("Expected zero vector for NaN input, got %v", got)
	}
	got := SafeNormalize(mgl64.Vec3{0, 0, 4})
	if !got.ApproxEqual(mgl64.Vec3{0, 0, 1}) {
		t.Errorf("Expected unit Z, got %v", got)
	}
}

func TestMoveTowards(t *testing.T) {
	got := MoveTowards(mgl64.Vec3{}, mgl64.Vec3{10, 0, 0}, 3)
	if !got.ApproxEqual(mgl64.Vec3{3, 0, 0}) {
		t.Errorf("Expected partial step, got %v", got)
	}
	got = MoveTowards(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 3)
	if got != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Expected exact landing, got %v", got)
	}
}

func TestRayPlane(t *testing.T) {
	origin := mgl64.Vec3{0, 10, 0}
	dir := SafeNormalize(mgl64.Vec3{1, -1, 0})

	hit, dist, ok := RayPlane(origin, dir, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	if !ok {
		t.Fatal("Expected intersection")
	}
	if !hit.ApproxEqualThreshold(mgl64.Vec3{10, 0, 0}, 1e-9) {
		t.Errorf("Expected hit at (10,0,0), got %v", hit)
	}
	if math.Abs(dist-10*math.Sqrt2) > 1e-9 {
		t.Errorf("Expected distance %v, got %v", 10*math.Sqrt2, dist)
	}

	if _, _, ok := RayPlane(origin, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}); ok {
		t.Error("Expected no hit for parallel ray")
	}
	if _, _, ok := RayPlane(origin, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}); ok {
		t.Error("Expected no hit for ray pointing away")
	}
}

func TestRaySphere(t *testing.T) {
	dir := mgl64.Vec3{0, 0, -1}
	center := mgl64.Vec3{0, 0, -10}

	tests := []struct {
		name   string
		origin mgl64.Vec3
		solid  bool
		hollow bool
		want   float64
		hit    bool
	}{
		{"outside front", mgl64.Vec3{}, false, false, 8, true},
		{"miss sideways", mgl64.Vec3{5, 0, 0}, false, false, 0, false},
		{"behind", mgl64.Vec3{0, 0, -20}, false, false, 0, false},
		{"inside solid", center, true, false, 0, true},
		{"inside non-solid", center, false, false, 2, true},
		{"inside hollow solid", center, true, true, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := RaySphere(tt.origin, dir, center, 2, tt.solid, tt.hollow)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("toi = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRayBox(t *testing.T) {
	half := mgl64.Vec3{1, 1, 1}

	toi, ok := RayBox(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1}, half, true)
	if !ok || math.Abs(toi-4) > 1e-9 {
		t.Errorf("Expected hit at 4, got %v %v", toi, ok)
	}

	toi, ok = RayBox(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, half, false)
	if !ok || math.Abs(toi-1) > 1e-9 {
		t.Errorf("Expected exit at 1 for non-solid inside origin, got %v %v", toi, ok)
	}

	toi, ok = RayBox(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, half, true)
	if !ok || toi != 0 {
		t.Errorf("Expected 0 for solid inside origin, got %v %v", toi, ok)
	}

	if _, ok := RayBox(mgl64.Vec3{0, 5, 5}, mgl64.Vec3{0, 0, -1}, half, true); ok {
		t.Error("Expected miss")
	}
}
