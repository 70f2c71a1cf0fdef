package physics

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skillcast/component"
	"github.com/lixenwraith/skillcast/core"
)

// benchScene scatters n balls and cuboids on a 100x100 plane
func benchScene(n int) *fakeScene {
	rng := rand.New(rand.NewSource(1))
	scene := newFakeScene()
	for i := 0; i < n; i++ {
		pos := mgl64.Vec3{rng.Float64()*100 - 50, 1, rng.Float64()*100 - 50}
		col := ball(0.5+rng.Float64(), component.CategoryActor)
		if i%2 == 1 {
			col = component.ColliderComponent{
				Shape:       component.ColliderShapeCuboid,
				HalfExtents: mgl64.Vec3{1, 1, 0.25},
				Category:    component.CategoryBarrier,
			}
		}
		scene.add(core.Entity(i+1), pos, col)
	}
	return scene
}

func BenchmarkCastRay100(b *testing.B) {
	rc := NewSceneRayCaster(benchScene(100))
	dir := mgl64.Vec3{1, 0, -1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rc.CastRay(mgl64.Vec3{0, 1, 0}, dir, 50, false, QueryFilter{})
	}
}

func BenchmarkCastRay1000Masked(b *testing.B) {
	rc := NewSceneRayCaster(benchScene(1000))
	dir := mgl64.Vec3{1, 0, -1}
	filter := QueryFilter{Mask: component.CategoryBarrier, ExcludeSensors: true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rc.CastRay(mgl64.Vec3{0, 1, 0}, dir, 50, true, filter)
	}
}

func BenchmarkBuildCustomCollider(b *testing.B) {
	meshes := DefaultMeshes()
	desc := component.ShapeDesc{Shape: component.ShapeCustom{Model: "wall_segment", Collider: component.ColliderCuboid}}
	for i := 0; i < b.N; i++ {
		if _, err := BuildCollider(component.RoleContact, desc, meshes); err != nil {
			b.Fatal(err)
		}
	}
}
